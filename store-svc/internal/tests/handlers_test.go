package tests

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	httpapi "repartoya/store-svc/internal/api/http"
	"repartoya/store-svc/internal/domain"
	"repartoya/store-svc/internal/mocks"
	"repartoya/store-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerFixture struct {
	restaurants *mocks.RestaurantService
	menu        *mocks.MenuService
	admin       *mocks.AdminService
	profiles    *mocks.ProfileService
	router      http.Handler
}

func setupTestRouter(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		restaurants: mocks.NewRestaurantService(t),
		menu:        mocks.NewMenuService(t),
		admin:       mocks.NewAdminService(t),
		profiles:    mocks.NewProfileService(t),
	}
	f.router = httpapi.NewRouter(httpapi.NewHandler(f.restaurants, f.menu, f.admin, f.profiles))
	return f
}

func request(method, target, userID, role string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
		req.Header.Set("X-User-Role", role)
	}
	return req
}

func TestRegisterRestaurant(t *testing.T) {
	t.Run("restaurant role can register", func(t *testing.T) {
		f := setupTestRouter(t)
		f.restaurants.On("Register", "owner-1", mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("POST", "/api/restaurants", "owner-1", "restaurant",
			map[string]string{"name": "La Esquina", "address": "Av. Corrientes 1234"}))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("client role is refused", func(t *testing.T) {
		f := setupTestRouter(t)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("POST", "/api/restaurants", "user-1", "client",
			map[string]string{"name": "Nope"}))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("second restaurant conflicts", func(t *testing.T) {
		f := setupTestRouter(t)
		f.restaurants.On("Register", "owner-1", mock.Anything).Return(service.ErrAlreadyOwns)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("POST", "/api/restaurants", "owner-1", "restaurant",
			map[string]string{"name": "Second"}))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestListRestaurants(t *testing.T) {
	f := setupTestRouter(t)
	f.restaurants.On("ListVisible").Return([]domain.Restaurant{
		{ID: "rest-1", Name: "La Esquina", Approved: true, Active: true},
	}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, request("GET", "/api/restaurants", "user-1", "client", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var restaurants []domain.Restaurant
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&restaurants))
	assert.Len(t, restaurants, 1)
	assert.Equal(t, "La Esquina", restaurants[0].Name)
}

func TestUpdateRestaurant(t *testing.T) {
	t.Run("non-owner forbidden", func(t *testing.T) {
		f := setupTestRouter(t)
		f.restaurants.On("Update", "owner-2", mock.Anything).Return(service.ErrNotOwner)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("PUT", "/api/restaurants/rest-1", "owner-2", "restaurant",
			map[string]string{"name": "Hijacked"}))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		f := setupTestRouter(t)
		f.restaurants.On("Update", "owner-1", mock.Anything).Return(service.ErrNotFound)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("PUT", "/api/restaurants/ghost", "owner-1", "restaurant",
			map[string]string{"name": "X"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListMenu(t *testing.T) {
	t.Run("client sees available items only", func(t *testing.T) {
		f := setupTestRouter(t)
		f.menu.On("List", "rest-1", true).Return([]domain.MenuItem{
			{ID: "item-1", Name: "Empanada de carne", Price: 1400, Available: true},
		}, nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("GET", "/api/restaurants/rest-1/menu", "user-1", "client", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("owner sees the full menu", func(t *testing.T) {
		f := setupTestRouter(t)
		f.menu.On("List", "rest-1", false).Return([]domain.MenuItem{}, nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("GET", "/api/restaurants/rest-1/menu", "owner-1", "restaurant", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func imageUploadRequest(t *testing.T, target, userID, role string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="dish.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	assert.NoError(t, err)
	part.Write([]byte("\x89PNG\r\n\x1a\n"))
	mw.Close()

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
		req.Header.Set("X-User-Role", role)
	}
	return req
}

// The item image route must enforce ownership like every other menu
// mutation does; a caller with no identity headers gets refused.
func TestUploadMenuItemImage(t *testing.T) {
	setup := func(t *testing.T) *handlerFixture {
		f := setupTestRouter(t)
		handler := httpapi.NewHandler(f.restaurants, f.menu, f.admin, f.profiles)
		handler.UploadDir = t.TempDir()
		router := mux.NewRouter()
		handler.RegisterRoutes(router)
		f.router = router
		return f
	}

	t.Run("owner uploads", func(t *testing.T) {
		f := setup(t)
		f.menu.On("UpdateItemImage", "owner-1", "rest-1", "item-1", mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, imageUploadRequest(t, "/api/restaurants/rest-1/menu/item-1/image", "owner-1", "restaurant"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anonymous caller is refused", func(t *testing.T) {
		f := setup(t)
		f.menu.On("UpdateItemImage", "", "rest-1", "item-1", mock.Anything).Return(service.ErrNotOwner)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, imageUploadRequest(t, "/api/restaurants/rest-1/menu/item-1/image", "", ""))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		f := setup(t)
		f.menu.On("UpdateItemImage", "owner-2", "rest-1", "item-1", mock.Anything).Return(service.ErrNotOwner)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, imageUploadRequest(t, "/api/restaurants/rest-1/menu/item-1/image", "owner-2", "restaurant"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	t.Run("non-admin is refused everywhere", func(t *testing.T) {
		f := setupTestRouter(t)

		for _, target := range []struct {
			method string
			path   string
		}{
			{"GET", "/api/admin/restaurants/pending"},
			{"PUT", "/api/admin/restaurants/rest-1/approve"},
			{"PUT", "/api/admin/restaurants/rest-1/suspend"},
			{"GET", "/api/admin/stats"},
		} {
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, request(target.method, target.path, "user-1", "client", nil))
			assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", target.method, target.path)
		}
	})

	t.Run("approve", func(t *testing.T) {
		f := setupTestRouter(t)
		f.admin.On("Approve", "rest-1").Return(nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("PUT", "/api/admin/restaurants/rest-1/approve", "admin-1", "admin", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stats", func(t *testing.T) {
		f := setupTestRouter(t)
		f.admin.On("Stats").Return(&domain.PlatformStats{
			Clients: 12, Restaurants: 3, Couriers: 5, PendingApproval: 1, Orders: 40, DeliveredOrders: 31,
		}, nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("GET", "/api/admin/stats", "admin-1", "admin", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var stats domain.PlatformStats
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
		assert.Equal(t, 31, stats.DeliveredOrders)
	})
}

func TestCommissionRateEndpoints(t *testing.T) {
	t.Run("anyone can read the current rate", func(t *testing.T) {
		f := setupTestRouter(t)
		f.admin.On("CommissionRate").Return(12.5, nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("GET", "/api/admin/config/commission-rate", "owner-1", "restaurant", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "12.5")
	})

	t.Run("only admin can change it", func(t *testing.T) {
		f := setupTestRouter(t)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("PUT", "/api/admin/config/commission-rate", "owner-1", "restaurant",
			map[string]float64{"commission_rate": 50}))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing rate field", func(t *testing.T) {
		f := setupTestRouter(t)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("PUT", "/api/admin/config/commission-rate", "admin-1", "admin",
			map[string]string{}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("out of range rate", func(t *testing.T) {
		f := setupTestRouter(t)
		f.admin.On("SetCommissionRate", 150.0).Return(service.ErrBadRate)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("PUT", "/api/admin/config/commission-rate", "admin-1", "admin",
			map[string]float64{"commission_rate": 150}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfileEndpoints(t *testing.T) {
	t.Run("get profile", func(t *testing.T) {
		f := setupTestRouter(t)
		f.profiles.On("Get", "user-1").
			Return(&domain.Profile{ID: "user-1", Role: "client", Name: "Marta"}, nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("GET", "/api/profiles/user-1", "user-1", "client", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cannot edit someone else's profile", func(t *testing.T) {
		f := setupTestRouter(t)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("PUT", "/api/profiles/user-2", "user-1", "client",
			map[string]string{"name": "Impostor"}))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin can edit any profile", func(t *testing.T) {
		f := setupTestRouter(t)
		f.profiles.On("Update", mock.MatchedBy(func(p *domain.Profile) bool {
			return p.ID == "user-2"
		})).Return(nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, request("PUT", "/api/profiles/user-2", "admin-1", "admin",
			map[string]string{"name": "Fixed Name"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
