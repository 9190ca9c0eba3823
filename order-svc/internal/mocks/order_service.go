package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	"repartoya/order-svc/internal/domain"
	"repartoya/order-svc/internal/service"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderServiceInterface) orderResult(ret mock.Arguments) (*domain.Order, error) {
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Create(ctx context.Context, actor domain.Actor, input service.CreateOrderInput) (*domain.Order, error) {
	return _m.orderResult(_m.Called(ctx, actor, input))
}

func (_m *OrderServiceInterface) Get(ctx context.Context, id string) (*domain.Order, error) {
	return _m.orderResult(_m.Called(ctx, id))
}

func (_m *OrderServiceInterface) Transition(ctx context.Context, actor domain.Actor, id string, to domain.Status) (*domain.Order, error) {
	return _m.orderResult(_m.Called(ctx, actor, id, to))
}

func (_m *OrderServiceInterface) Accept(ctx context.Context, actor domain.Actor, id string, fee float64) (*domain.Order, error) {
	return _m.orderResult(_m.Called(ctx, actor, id, fee))
}

func (_m *OrderServiceInterface) Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Order, error) {
	return _m.orderResult(_m.Called(ctx, actor, id))
}

func (_m *OrderServiceInterface) SetPrepTime(ctx context.Context, actor domain.Actor, id string, minutes int) error {
	return _m.Called(ctx, actor, id, minutes).Error(0)
}

func (_m *OrderServiceInterface) ListForActor(ctx context.Context, actor domain.Actor) ([]domain.Order, error) {
	ret := _m.Called(ctx, actor)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) PickupPool(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) PaymentQR(ctx context.Context, id string) ([]byte, error) {
	ret := _m.Called(ctx, id)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}
