// Package mocks holds hand-maintained testify mocks for the service seams.
package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	"repartoya/order-svc/internal/domain"
)

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	return _m.Called(ctx, order).Error(0)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateStatus(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	ret := _m.Called(ctx, id, from, to)
	return ret.Bool(0), ret.Error(1)
}

func (_m *OrderRepository) CompleteOrder(ctx context.Context, id string, rate float64) (bool, error) {
	ret := _m.Called(ctx, id, rate)
	return ret.Bool(0), ret.Error(1)
}

func (_m *OrderRepository) ClaimForPickup(ctx context.Context, id, courierID string, fee float64, phone string) (bool, error) {
	ret := _m.Called(ctx, id, courierID, fee, phone)
	return ret.Bool(0), ret.Error(1)
}

func (_m *OrderRepository) SetPrepTime(ctx context.Context, id string, minutes int) (bool, error) {
	ret := _m.Called(ctx, id, minutes)
	return ret.Bool(0), ret.Error(1)
}

func (_m *OrderRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	ret := _m.Called(ctx, clientID)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListByCourier(ctx context.Context, courierID string) ([]domain.Order, error) {
	ret := _m.Called(ctx, courierID)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListPickupPool(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}
