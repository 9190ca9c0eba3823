package mocks

import (
	mock "github.com/stretchr/testify/mock"

	"repartoya/feed-svc/internal/domain"
)

type FeedService struct {
	mock.Mock
}

func NewFeedService(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedService {
	m := &FeedService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *FeedService) Pool() ([]domain.OrderSnapshot, error) {
	ret := _m.Called()
	var r0 []domain.OrderSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.OrderSnapshot)
	}
	return r0, ret.Error(1)
}

func (_m *FeedService) Buckets(restaurantID string) (domain.Buckets, error) {
	ret := _m.Called(restaurantID)
	return ret.Get(0).(domain.Buckets), ret.Error(1)
}

func (_m *FeedService) EarningsToday(restaurantID string) (domain.Earnings, error) {
	ret := _m.Called(restaurantID)
	return ret.Get(0).(domain.Earnings), ret.Error(1)
}

func (_m *FeedService) ActiveOrders(clientID string) ([]domain.OrderSnapshot, error) {
	ret := _m.Called(clientID)
	var r0 []domain.OrderSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.OrderSnapshot)
	}
	return r0, ret.Error(1)
}

func (_m *FeedService) TopEarnersToday(limit int) ([]domain.EarningsRank, error) {
	ret := _m.Called(limit)
	var r0 []domain.EarningsRank
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.EarningsRank)
	}
	return r0, ret.Error(1)
}

func (_m *FeedService) Deliveries(courierID string) ([]domain.OrderSnapshot, error) {
	ret := _m.Called(courierID)
	var r0 []domain.OrderSnapshot
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.OrderSnapshot)
	}
	return r0, ret.Error(1)
}
