package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	"repartoya/order-svc/internal/domain"
)

type ProfileRepository struct {
	mock.Mock
}

func NewProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProfileRepository {
	m := &ProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ProfileRepository) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Profile
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Profile)
	}
	return r0, ret.Error(1)
}

type ConfigRepository struct {
	mock.Mock
}

func NewConfigRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConfigRepository {
	m := &ConfigRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ConfigRepository) CommissionRate(ctx context.Context) (float64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(float64), ret.Error(1)
}

type RestaurantDirectory struct {
	mock.Mock
}

func NewRestaurantDirectory(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantDirectory {
	m := &RestaurantDirectory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *RestaurantDirectory) RestaurantIDForOwner(ctx context.Context, ownerID string) (string, error) {
	ret := _m.Called(ctx, ownerID)
	return ret.String(0), ret.Error(1)
}

type ClaimCache struct {
	mock.Mock
}

func NewClaimCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *ClaimCache {
	m := &ClaimCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ClaimCache) ClaimKey(orderID string) string {
	return _m.Called(orderID).String(0)
}

func (_m *ClaimCache) AcquireClaim(ctx context.Context, key, courierID string) (bool, error) {
	ret := _m.Called(ctx, key, courierID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *ClaimCache) ReleaseClaim(ctx context.Context, key string) error {
	return _m.Called(ctx, key).Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}
