package service

import "repartoya/store-svc/internal/domain"

type RestaurantServiceInterface interface {
	Register(ownerID string, rest *domain.Restaurant) error
	ListVisible() ([]domain.Restaurant, error)
	Get(id string) (*domain.Restaurant, error)
	GetByOwner(ownerID string) (*domain.Restaurant, error)
	Update(ownerID string, rest *domain.Restaurant) error
	SetActive(id, ownerID string, active bool) error
	UpdatePhoto(id, photoURL string) error
}

type MenuServiceInterface interface {
	CreateItem(ownerID string, item *domain.MenuItem) error
	List(restaurantID string, availableOnly bool) ([]domain.MenuItem, error)
	UpdateItem(ownerID string, item *domain.MenuItem) error
	DeleteItem(ownerID, restaurantID, itemID string) error
	UpdateItemImage(ownerID, restaurantID, itemID, imageURL string) error
}

type AdminServiceInterface interface {
	PendingRestaurants() ([]domain.Restaurant, error)
	Approve(restaurantID string) error
	Suspend(restaurantID string) error
	Stats() (*domain.PlatformStats, error)
	CommissionRate() (float64, error)
	SetCommissionRate(rate float64) error
}

type ProfileServiceInterface interface {
	Get(id string) (*domain.Profile, error)
	Update(profile *domain.Profile) error
}

type Repository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListVisibleRestaurants() ([]domain.Restaurant, error)
	ListPendingApproval() ([]domain.Restaurant, error)
	GetRestaurant(id string) (*domain.Restaurant, error)
	GetRestaurantByOwner(ownerID string) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	SetRestaurantApproved(id string, approved bool) (bool, error)
	SetRestaurantActive(id, ownerID string, active bool) (bool, error)
	UpdateRestaurantPhoto(id, photoURL string) error

	CreateMenuItem(item *domain.MenuItem) error
	ListMenu(restaurantID string, availableOnly bool) ([]domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) (bool, error)
	DeleteMenuItem(restaurantID, itemID string) (bool, error)
	UpdateMenuItemImage(restaurantID, itemID, imageURL string) error

	GetProfile(id string) (*domain.Profile, error)
	UpdateProfile(profile *domain.Profile) error

	GetPlatformStats() (*domain.PlatformStats, error)
	GetCommissionRate() (float64, error)
	SetCommissionRate(rate float64) error
}

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ MenuServiceInterface       = (*MenuService)(nil)
	_ AdminServiceInterface      = (*AdminService)(nil)
	_ ProfileServiceInterface    = (*ProfileService)(nil)
)
