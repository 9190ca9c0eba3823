package mocks

import (
	"time"

	mock "github.com/stretchr/testify/mock"

	"repartoya/feed-svc/internal/domain"
)

type ProjectionStore struct {
	mock.Mock
}

func NewProjectionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProjectionStore {
	m := &ProjectionStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ProjectionStore) SaveSnapshot(snap domain.OrderSnapshot) error {
	return _m.Called(snap).Error(0)
}

func (_m *ProjectionStore) GetSnapshot(orderID string) (*domain.OrderSnapshot, error) {
	ret := _m.Called(orderID)
	var r0 *domain.OrderSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.OrderSnapshot)
	}
	return r0, ret.Error(1)
}

func (_m *ProjectionStore) UpdatePool(orderID string, createdAt time.Time, ready bool) error {
	return _m.Called(orderID, createdAt, ready).Error(0)
}

func (_m *ProjectionStore) PoolIDs() ([]string, error) {
	ret := _m.Called()
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

func (_m *ProjectionStore) SyncBuckets(restaurantID string, b domain.Buckets) error {
	return _m.Called(restaurantID, b).Error(0)
}

func (_m *ProjectionStore) GetBuckets(restaurantID string) (domain.Buckets, error) {
	ret := _m.Called(restaurantID)
	return ret.Get(0).(domain.Buckets), ret.Error(1)
}

func (_m *ProjectionStore) SetClientActive(clientID, orderID string, active bool) error {
	return _m.Called(clientID, orderID, active).Error(0)
}

func (_m *ProjectionStore) ActiveOrderIDs(clientID string) ([]string, error) {
	ret := _m.Called(clientID)
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

func (_m *ProjectionStore) RecordDelivery(courierID, orderID string, at time.Time) error {
	return _m.Called(courierID, orderID, at).Error(0)
}

func (_m *ProjectionStore) DeliveryIDs(courierID string) ([]string, error) {
	ret := _m.Called(courierID)
	var r0 []string
	if v := ret.Get(0); v != nil {
		r0 = v.([]string)
	}
	return r0, ret.Error(1)
}

func (_m *ProjectionStore) RecordEarnings(restaurantID, date string, gross, commission, net float64) error {
	return _m.Called(restaurantID, date, gross, commission, net).Error(0)
}

func (_m *ProjectionStore) TopEarners(date string, limit int) ([]domain.EarningsRank, error) {
	ret := _m.Called(date, limit)
	var r0 []domain.EarningsRank
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.EarningsRank)
	}
	return r0, ret.Error(1)
}

func (_m *ProjectionStore) GetEarnings(restaurantID, date string) (domain.Earnings, error) {
	ret := _m.Called(restaurantID, date)
	return ret.Get(0).(domain.Earnings), ret.Error(1)
}
