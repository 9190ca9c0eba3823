package mocks

import (
	mock "github.com/stretchr/testify/mock"

	"repartoya/store-svc/internal/domain"
)

type RestaurantService struct {
	mock.Mock
}

func NewRestaurantService(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantService {
	m := &RestaurantService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *RestaurantService) Register(ownerID string, rest *domain.Restaurant) error {
	return _m.Called(ownerID, rest).Error(0)
}

func (_m *RestaurantService) ListVisible() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantService) Get(id string) (*domain.Restaurant, error) {
	ret := _m.Called(id)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantService) GetByOwner(ownerID string) (*domain.Restaurant, error) {
	ret := _m.Called(ownerID)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantService) Update(ownerID string, rest *domain.Restaurant) error {
	return _m.Called(ownerID, rest).Error(0)
}

func (_m *RestaurantService) SetActive(id, ownerID string, active bool) error {
	return _m.Called(id, ownerID, active).Error(0)
}

func (_m *RestaurantService) UpdatePhoto(id, photoURL string) error {
	return _m.Called(id, photoURL).Error(0)
}

type MenuService struct {
	mock.Mock
}

func NewMenuService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuService {
	m := &MenuService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuService) CreateItem(ownerID string, item *domain.MenuItem) error {
	return _m.Called(ownerID, item).Error(0)
}

func (_m *MenuService) List(restaurantID string, availableOnly bool) ([]domain.MenuItem, error) {
	ret := _m.Called(restaurantID, availableOnly)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuService) UpdateItem(ownerID string, item *domain.MenuItem) error {
	return _m.Called(ownerID, item).Error(0)
}

func (_m *MenuService) DeleteItem(ownerID, restaurantID, itemID string) error {
	return _m.Called(ownerID, restaurantID, itemID).Error(0)
}

func (_m *MenuService) UpdateItemImage(ownerID, restaurantID, itemID, imageURL string) error {
	return _m.Called(ownerID, restaurantID, itemID, imageURL).Error(0)
}

type AdminService struct {
	mock.Mock
}

func NewAdminService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AdminService {
	m := &AdminService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AdminService) PendingRestaurants() ([]domain.Restaurant, error) {
	ret := _m.Called()
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *AdminService) Approve(restaurantID string) error {
	return _m.Called(restaurantID).Error(0)
}

func (_m *AdminService) Suspend(restaurantID string) error {
	return _m.Called(restaurantID).Error(0)
}

func (_m *AdminService) Stats() (*domain.PlatformStats, error) {
	ret := _m.Called()
	var r0 *domain.PlatformStats
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.PlatformStats)
	}
	return r0, ret.Error(1)
}

func (_m *AdminService) CommissionRate() (float64, error) {
	ret := _m.Called()
	return ret.Get(0).(float64), ret.Error(1)
}

func (_m *AdminService) SetCommissionRate(rate float64) error {
	return _m.Called(rate).Error(0)
}

type ProfileService struct {
	mock.Mock
}

func NewProfileService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProfileService {
	m := &ProfileService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ProfileService) Get(id string) (*domain.Profile, error) {
	ret := _m.Called(id)
	var r0 *domain.Profile
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Profile)
	}
	return r0, ret.Error(1)
}

func (_m *ProfileService) Update(profile *domain.Profile) error {
	return _m.Called(profile).Error(0)
}
