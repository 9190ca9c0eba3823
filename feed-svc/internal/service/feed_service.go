package service

import (
	"time"

	"repartoya/feed-svc/internal/domain"
)

// FeedService is the HTTP read side over the Redis projections.
type FeedService struct {
	store ProjectionStoreInterface
}

func NewFeedService(store ProjectionStoreInterface) *FeedService {
	return &FeedService{store: store}
}

// Pool lists orders currently sitting in ready, oldest first.
func (s *FeedService) Pool() ([]domain.OrderSnapshot, error) {
	ids, err := s.store.PoolIDs()
	if err != nil {
		return nil, err
	}
	return s.resolve(ids)
}

func (s *FeedService) Buckets(restaurantID string) (domain.Buckets, error) {
	return s.store.GetBuckets(restaurantID)
}

func (s *FeedService) EarningsToday(restaurantID string) (domain.Earnings, error) {
	today := time.Now().UTC().Format("2006-01-02")
	return s.store.GetEarnings(restaurantID, today)
}

func (s *FeedService) ActiveOrders(clientID string) ([]domain.OrderSnapshot, error) {
	ids, err := s.store.ActiveOrderIDs(clientID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ids)
}

func (s *FeedService) Deliveries(courierID string) ([]domain.OrderSnapshot, error) {
	ids, err := s.store.DeliveryIDs(courierID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ids)
}

func (s *FeedService) TopEarnersToday(limit int) ([]domain.EarningsRank, error) {
	if limit <= 0 {
		limit = 10
	}
	today := time.Now().UTC().Format("2006-01-02")
	return s.store.TopEarners(today, limit)
}

// resolve turns a list of member ids into snapshots, dropping ids whose
// snapshot hash has already expired.
func (s *FeedService) resolve(ids []string) ([]domain.OrderSnapshot, error) {
	snapshots := []domain.OrderSnapshot{}
	for _, id := range ids {
		snap, err := s.store.GetSnapshot(id)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			continue
		}
		snapshots = append(snapshots, *snap)
	}
	return snapshots, nil
}
