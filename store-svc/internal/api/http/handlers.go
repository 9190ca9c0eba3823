package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"repartoya/store-svc/internal/domain"
	"repartoya/store-svc/internal/service"

	"github.com/gorilla/mux"
)

const (
	roleRestaurant = "restaurant"
	roleAdmin      = "admin"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
	Admin       service.AdminServiceInterface
	Profiles    service.ProfileServiceInterface
	UploadDir   string
}

func NewHandler(restaurants service.RestaurantServiceInterface, menu service.MenuServiceInterface,
	admin service.AdminServiceInterface, profiles service.ProfileServiceInterface) *Handler {
	return &Handler{
		Restaurants: restaurants,
		Menu:        menu,
		Admin:       admin,
		Profiles:    profiles,
		UploadDir:   "./uploads",
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.registerRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/mine", h.myRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/active", h.setActive).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/photo", h.uploadRestaurantPhoto).Methods("POST")

	r.HandleFunc("/api/restaurants/{id}/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}/image", h.uploadMenuItemImage).Methods("POST")

	r.HandleFunc("/api/profiles/{id}", h.getProfile).Methods("GET")
	r.HandleFunc("/api/profiles/{id}", h.updateProfile).Methods("PUT")

	r.HandleFunc("/api/admin/restaurants/pending", h.pendingRestaurants).Methods("GET")
	r.HandleFunc("/api/admin/restaurants/{id}/approve", h.approveRestaurant).Methods("PUT")
	r.HandleFunc("/api/admin/restaurants/{id}/suspend", h.suspendRestaurant).Methods("PUT")
	r.HandleFunc("/api/admin/stats", h.platformStats).Methods("GET")
	r.HandleFunc("/api/admin/config/commission-rate", h.getCommissionRate).Methods("GET")
	r.HandleFunc("/api/admin/config/commission-rate", h.setCommissionRate).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "store-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func identity(r *http.Request) (id, role string) {
	return r.Header.Get("X-User-Id"), r.Header.Get("X-User-Role")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrNotOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrBadName), errors.Is(err, service.ErrBadPrice),
		errors.Is(err, service.ErrBadRate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrAlreadyOwns):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) registerRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, role := identity(r)
	if role != roleRestaurant {
		http.Error(w, "restaurant role required", http.StatusForbidden)
		return
	}

	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Restaurants.Register(userID, &rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.ListVisible()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) myRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, role := identity(r)
	if role != roleRestaurant {
		http.Error(w, "restaurant role required", http.StatusForbidden)
		return
	}

	rest, err := h.Restaurants.GetByOwner(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)

	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.ID = mux.Vars(r)["id"]

	if err := h.Restaurants.Update(userID, &rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)

	var payload struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Restaurants.SetActive(mux.Vars(r)["id"], userID, payload.Active); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"active": payload.Active})
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// saveUpload stores one multipart image and returns its public URL path.
func (h *Handler) saveUpload(r *http.Request, prefix string) (string, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return "", err
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		return "", fmt.Errorf("invalid file type, only JPEG, PNG, GIF, WebP allowed")
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s", prefix, header.Filename)
	dst, err := os.Create(h.UploadDir + "/" + filename)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

func (h *Handler) uploadRestaurantPhoto(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	restaurantID := mux.Vars(r)["id"]

	rest, err := h.Restaurants.Get(restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	if rest.OwnerID != userID {
		http.Error(w, "not the owner", http.StatusForbidden)
		return
	}

	photoURL, err := h.saveUpload(r, "restaurant_"+restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Restaurants.UpdatePhoto(restaurantID, photoURL); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"photo_url": photoURL})
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = mux.Vars(r)["id"]

	if err := h.Menu.CreateItem(userID, &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	_, role := identity(r)

	// owners and admins see unavailable items too
	availableOnly := role != roleRestaurant && role != roleAdmin

	items, err := h.Menu.List(mux.Vars(r)["id"], availableOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	vars := mux.Vars(r)

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = vars["itemId"]
	item.RestaurantID = vars["id"]

	if err := h.Menu.UpdateItem(userID, &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	vars := mux.Vars(r)

	if err := h.Menu.DeleteItem(userID, vars["id"], vars["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	userID, _ := identity(r)
	vars := mux.Vars(r)

	imageURL, err := h.saveUpload(r, fmt.Sprintf("item_%s_%s", vars["id"], vars["itemId"]))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.UpdateItemImage(userID, vars["id"], vars["itemId"], imageURL); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, role := identity(r)
	profileID := mux.Vars(r)["id"]
	if userID != profileID && role != roleAdmin {
		http.Error(w, "can only edit own profile", http.StatusForbidden)
		return
	}

	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	profile.ID = profileID

	if err := h.Profiles.Update(&profile); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, role := identity(r); role != roleAdmin {
		http.Error(w, "admin role required", http.StatusForbidden)
		return false
	}
	return true
}

func (h *Handler) pendingRestaurants(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	restaurants, err := h.Admin.PendingRestaurants()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) approveRestaurant(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := h.Admin.Approve(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"approved": true})
}

func (h *Handler) suspendRestaurant(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := h.Admin.Suspend(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"approved": false})
}

func (h *Handler) platformStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	stats, err := h.Admin.Stats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getCommissionRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.Admin.CommissionRate()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"commission_rate": rate})
}

func (h *Handler) setCommissionRate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var payload struct {
		Rate *float64 `json:"commission_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Rate == nil {
		http.Error(w, "commission_rate is required", http.StatusBadRequest)
		return
	}
	if err := h.Admin.SetCommissionRate(*payload.Rate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"commission_rate": *payload.Rate})
}
