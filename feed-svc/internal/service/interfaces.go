package service

import (
	"time"

	"repartoya/feed-svc/internal/domain"
	"repartoya/feed-svc/internal/storage"
)

type ProjectionStoreInterface interface {
	SaveSnapshot(snap domain.OrderSnapshot) error
	GetSnapshot(orderID string) (*domain.OrderSnapshot, error)
	UpdatePool(orderID string, createdAt time.Time, ready bool) error
	PoolIDs() ([]string, error)
	SyncBuckets(restaurantID string, b domain.Buckets) error
	GetBuckets(restaurantID string) (domain.Buckets, error)
	SetClientActive(clientID, orderID string, active bool) error
	ActiveOrderIDs(clientID string) ([]string, error)
	RecordDelivery(courierID, orderID string, at time.Time) error
	DeliveryIDs(courierID string) ([]string, error)
	RecordEarnings(restaurantID, date string, gross, commission, net float64) error
	GetEarnings(restaurantID, date string) (domain.Earnings, error)
	TopEarners(date string, limit int) ([]domain.EarningsRank, error)
}

type FeedServiceInterface interface {
	Pool() ([]domain.OrderSnapshot, error)
	Buckets(restaurantID string) (domain.Buckets, error)
	EarningsToday(restaurantID string) (domain.Earnings, error)
	ActiveOrders(clientID string) ([]domain.OrderSnapshot, error)
	Deliveries(courierID string) ([]domain.OrderSnapshot, error)
	TopEarnersToday(limit int) ([]domain.EarningsRank, error)
}

var (
	_ ProjectionStoreInterface = (*storage.ProjectionStore)(nil)
	_ FeedServiceInterface     = (*FeedService)(nil)
)
