package tests

import (
	"testing"

	"repartoya/store-svc/internal/domain"
	"repartoya/store-svc/internal/mocks"
	"repartoya/store-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRestaurantService_Register(t *testing.T) {
	tests := []struct {
		name         string
		ownerID      string
		restaurant   domain.Restaurant
		prepareMocks func(repo *mocks.Repository)
		expectedErr  error
	}{
		{
			name:       "successful registration starts unapproved",
			ownerID:    "owner-1",
			restaurant: domain.Restaurant{Name: "La Esquina", Address: "Av. Corrientes 1234"},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurantByOwner", "owner-1").Return(nil, nil)
				repo.On("CreateRestaurant", mock.MatchedBy(func(r *domain.Restaurant) bool {
					return r.ID != "" && r.OwnerID == "owner-1" && !r.Approved && r.Active
				})).Return(nil)
			},
		},
		{
			name:         "empty name rejected",
			ownerID:      "owner-1",
			restaurant:   domain.Restaurant{Name: "   "},
			prepareMocks: func(repo *mocks.Repository) {},
			expectedErr:  service.ErrBadName,
		},
		{
			name:       "one restaurant per owner",
			ownerID:    "owner-1",
			restaurant: domain.Restaurant{Name: "Second Place"},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurantByOwner", "owner-1").
					Return(&domain.Restaurant{ID: "rest-1", OwnerID: "owner-1"}, nil)
			},
			expectedErr: service.ErrAlreadyOwns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			tt.prepareMocks(repo)
			svc := service.NewRestaurantService(repo)

			err := svc.Register(tt.ownerID, &tt.restaurant)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, tt.restaurant.ID)
			assert.False(t, tt.restaurant.Approved)
		})
	}
}

func TestRestaurantService_Update(t *testing.T) {
	current := &domain.Restaurant{ID: "rest-1", OwnerID: "owner-1", Name: "La Esquina"}

	t.Run("owner can update", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetRestaurant", "rest-1").Return(current, nil)
		repo.On("UpdateRestaurant", mock.Anything).Return(nil)
		svc := service.NewRestaurantService(repo)

		err := svc.Update("owner-1", &domain.Restaurant{ID: "rest-1", Name: "La Esquina Renovada"})
		assert.NoError(t, err)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetRestaurant", "rest-1").Return(current, nil)
		svc := service.NewRestaurantService(repo)

		err := svc.Update("owner-2", &domain.Restaurant{ID: "rest-1", Name: "Hijacked"})
		assert.ErrorIs(t, err, service.ErrNotOwner)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetRestaurant", "ghost").Return(nil, nil)
		svc := service.NewRestaurantService(repo)

		err := svc.Update("owner-1", &domain.Restaurant{ID: "ghost", Name: "X"})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestRestaurantService_SetActive(t *testing.T) {
	t.Run("toggle by owner", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("SetRestaurantActive", "rest-1", "owner-1", false).Return(true, nil)
		svc := service.NewRestaurantService(repo)

		assert.NoError(t, svc.SetActive("rest-1", "owner-1", false))
	})

	t.Run("conditional update misses for non-owner", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("SetRestaurantActive", "rest-1", "owner-2", false).Return(false, nil)
		svc := service.NewRestaurantService(repo)

		assert.ErrorIs(t, svc.SetActive("rest-1", "owner-2", false), service.ErrNotOwner)
	})
}

func TestMenuService_CreateItem(t *testing.T) {
	owned := &domain.Restaurant{ID: "rest-1", OwnerID: "owner-1"}

	tests := []struct {
		name         string
		ownerID      string
		item         domain.MenuItem
		prepareMocks func(repo *mocks.Repository)
		expectedErr  error
	}{
		{
			name:    "owner adds an item",
			ownerID: "owner-1",
			item:    domain.MenuItem{RestaurantID: "rest-1", Name: "Empanada de carne", Price: 1400},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurant", "rest-1").Return(owned, nil)
				repo.On("CreateMenuItem", mock.MatchedBy(func(i *domain.MenuItem) bool {
					return i.ID != "" && i.RestaurantID == "rest-1"
				})).Return(nil)
			},
		},
		{
			name:    "non-owner refused",
			ownerID: "owner-2",
			item:    domain.MenuItem{RestaurantID: "rest-1", Name: "Choripán", Price: 900},
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("GetRestaurant", "rest-1").Return(owned, nil)
			},
			expectedErr: service.ErrNotOwner,
		},
		{
			name:         "negative price rejected",
			ownerID:      "owner-1",
			item:         domain.MenuItem{RestaurantID: "rest-1", Name: "Gratis", Price: -1},
			prepareMocks: func(repo *mocks.Repository) {},
			expectedErr:  service.ErrBadPrice,
		},
		{
			name:         "nameless item rejected",
			ownerID:      "owner-1",
			item:         domain.MenuItem{RestaurantID: "rest-1", Price: 100},
			prepareMocks: func(repo *mocks.Repository) {},
			expectedErr:  service.ErrBadName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			tt.prepareMocks(repo)
			svc := service.NewMenuService(repo)

			err := svc.CreateItem(tt.ownerID, &tt.item)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMenuService_DeleteItem(t *testing.T) {
	owned := &domain.Restaurant{ID: "rest-1", OwnerID: "owner-1"}

	t.Run("delete existing", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetRestaurant", "rest-1").Return(owned, nil)
		repo.On("DeleteMenuItem", "rest-1", "item-1").Return(true, nil)
		svc := service.NewMenuService(repo)

		assert.NoError(t, svc.DeleteItem("owner-1", "rest-1", "item-1"))
	})

	t.Run("item already gone", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetRestaurant", "rest-1").Return(owned, nil)
		repo.On("DeleteMenuItem", "rest-1", "item-1").Return(false, nil)
		svc := service.NewMenuService(repo)

		assert.ErrorIs(t, svc.DeleteItem("owner-1", "rest-1", "item-1"), service.ErrNotFound)
	})
}

func TestMenuService_UpdateItemImage(t *testing.T) {
	owned := &domain.Restaurant{ID: "rest-1", OwnerID: "owner-1"}

	t.Run("owner replaces image", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetRestaurant", "rest-1").Return(owned, nil)
		repo.On("UpdateMenuItemImage", "rest-1", "item-1", "/uploads/item_rest-1_item-1.png").Return(nil)
		svc := service.NewMenuService(repo)

		assert.NoError(t, svc.UpdateItemImage("owner-1", "rest-1", "item-1", "/uploads/item_rest-1_item-1.png"))
	})

	t.Run("stranger is refused", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetRestaurant", "rest-1").Return(owned, nil)
		svc := service.NewMenuService(repo)

		err := svc.UpdateItemImage("owner-2", "rest-1", "item-1", "/uploads/x.png")
		assert.ErrorIs(t, err, service.ErrNotOwner)
	})

	t.Run("anonymous caller is refused", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetRestaurant", "rest-1").Return(owned, nil)
		svc := service.NewMenuService(repo)

		err := svc.UpdateItemImage("", "rest-1", "item-1", "/uploads/x.png")
		assert.ErrorIs(t, err, service.ErrNotOwner)
	})
}

func TestAdminService_ApproveSuspend(t *testing.T) {
	t.Run("approve pending restaurant", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("SetRestaurantApproved", "rest-1", true).Return(true, nil)
		svc := service.NewAdminService(repo)

		assert.NoError(t, svc.Approve("rest-1"))
	})

	t.Run("suspend clears approval", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("SetRestaurantApproved", "rest-1", false).Return(true, nil)
		svc := service.NewAdminService(repo)

		assert.NoError(t, svc.Suspend("rest-1"))
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("SetRestaurantApproved", "ghost", true).Return(false, nil)
		svc := service.NewAdminService(repo)

		assert.ErrorIs(t, svc.Approve("ghost"), service.ErrNotFound)
	})
}

func TestAdminService_SetCommissionRate(t *testing.T) {
	tests := []struct {
		name         string
		rate         float64
		prepareMocks func(repo *mocks.Repository)
		expectedErr  error
	}{
		{
			name: "valid rate stored",
			rate: 12.5,
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("SetCommissionRate", 12.5).Return(nil)
			},
		},
		{
			name: "zero is allowed",
			rate: 0,
			prepareMocks: func(repo *mocks.Repository) {
				repo.On("SetCommissionRate", 0.0).Return(nil)
			},
		},
		{
			name:         "negative rejected",
			rate:         -1,
			prepareMocks: func(repo *mocks.Repository) {},
			expectedErr:  service.ErrBadRate,
		},
		{
			name:         "over 100 rejected",
			rate:         100.5,
			prepareMocks: func(repo *mocks.Repository) {},
			expectedErr:  service.ErrBadRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			tt.prepareMocks(repo)
			svc := service.NewAdminService(repo)

			err := svc.SetCommissionRate(tt.rate)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProfileService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetProfile", "user-1").
			Return(&domain.Profile{ID: "user-1", Role: "client", Name: "Marta"}, nil)
		svc := service.NewProfileService(repo)

		profile, err := svc.Get("user-1")
		assert.NoError(t, err)
		assert.Equal(t, "Marta", profile.Name)
	})

	t.Run("missing", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("GetProfile", "ghost").Return(nil, nil)
		svc := service.NewProfileService(repo)

		_, err := svc.Get("ghost")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}
