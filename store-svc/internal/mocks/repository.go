package mocks

import (
	mock "github.com/stretchr/testify/mock"

	"repartoya/store-svc/internal/domain"
)

type Repository struct {
	mock.Mock
}

func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	m := &Repository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Repository) CreateRestaurant(rest *domain.Restaurant) error {
	return _m.Called(rest).Error(0)
}

func (_m *Repository) ListVisibleRestaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) ListPendingApproval() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) GetRestaurant(id string) (*domain.Restaurant, error) {
	ret := _m.Called(id)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) GetRestaurantByOwner(ownerID string) (*domain.Restaurant, error) {
	ret := _m.Called(ownerID)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) UpdateRestaurant(rest *domain.Restaurant) error {
	return _m.Called(rest).Error(0)
}

func (_m *Repository) SetRestaurantApproved(id string, approved bool) (bool, error) {
	ret := _m.Called(id, approved)
	return ret.Bool(0), ret.Error(1)
}

func (_m *Repository) SetRestaurantActive(id, ownerID string, active bool) (bool, error) {
	ret := _m.Called(id, ownerID, active)
	return ret.Bool(0), ret.Error(1)
}

func (_m *Repository) UpdateRestaurantPhoto(id, photoURL string) error {
	return _m.Called(id, photoURL).Error(0)
}

func (_m *Repository) CreateMenuItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *Repository) ListMenu(restaurantID string, availableOnly bool) ([]domain.MenuItem, error) {
	ret := _m.Called(restaurantID, availableOnly)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) UpdateMenuItem(item *domain.MenuItem) (bool, error) {
	ret := _m.Called(item)
	return ret.Bool(0), ret.Error(1)
}

func (_m *Repository) DeleteMenuItem(restaurantID, itemID string) (bool, error) {
	ret := _m.Called(restaurantID, itemID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *Repository) UpdateMenuItemImage(restaurantID, itemID, imageURL string) error {
	return _m.Called(restaurantID, itemID, imageURL).Error(0)
}

func (_m *Repository) GetProfile(id string) (*domain.Profile, error) {
	ret := _m.Called(id)
	var r0 *domain.Profile
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Profile)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) UpdateProfile(profile *domain.Profile) error {
	return _m.Called(profile).Error(0)
}

func (_m *Repository) GetPlatformStats() (*domain.PlatformStats, error) {
	ret := _m.Called()
	var r0 *domain.PlatformStats
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.PlatformStats)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) GetCommissionRate() (float64, error) {
	ret := _m.Called()
	return ret.Get(0).(float64), ret.Error(1)
}

func (_m *Repository) SetCommissionRate(rate float64) error {
	return _m.Called(rate).Error(0)
}
