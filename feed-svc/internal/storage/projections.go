package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"repartoya/feed-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ProjectionStore keeps the Redis read models the consumer maintains:
// the contested pickup pool, restaurant dashboard buckets, per-client
// active sets, courier delivery history, and settled earnings.
type ProjectionStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewProjectionStore(rdb *redis.Client) *ProjectionStore {
	return &ProjectionStore{
		rdb: rdb,
		ctx: context.Background(),
	}
}

const snapshotTTL = 24 * time.Hour

func snapshotKey(orderID string) string     { return "order:" + orderID }
func bucketsKey(restaurantID string) string { return "restaurant:" + restaurantID + ":buckets" }
func activeKey(clientID string) string      { return "client:" + clientID + ":active" }
func courierKey(courierID string) string    { return "courier:" + courierID + ":deliveries" }

func earningsKey(restaurantID, date string) string {
	return fmt.Sprintf("earnings:%s:%s", restaurantID, date)
}

const poolKey = "pool:ready"

func (s *ProjectionStore) SaveSnapshot(snap domain.OrderSnapshot) error {
	key := snapshotKey(snap.ID)
	if err := s.rdb.HSet(s.ctx, key, map[string]interface{}{
		"id":              snap.ID,
		"client_id":       snap.ClientID,
		"restaurant_id":   snap.RestaurantID,
		"delivery_id":     snap.DeliveryID,
		"status":          snap.Status,
		"total":           snap.Total,
		"delivery_fee":    snap.DeliveryFee,
		"commission_rate": snap.CommissionRate,
		"created_at":      snap.CreatedAt.Unix(),
		"updated_at":      snap.UpdatedAt.Unix(),
	}).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(s.ctx, key, snapshotTTL).Err()
}

func (s *ProjectionStore) GetSnapshot(orderID string) (*domain.OrderSnapshot, error) {
	fields, err := s.rdb.HGetAll(s.ctx, snapshotKey(orderID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	snap := &domain.OrderSnapshot{
		ID:           fields["id"],
		ClientID:     fields["client_id"],
		RestaurantID: fields["restaurant_id"],
		DeliveryID:   fields["delivery_id"],
		Status:       fields["status"],
	}
	snap.Total, _ = strconv.ParseFloat(fields["total"], 64)
	snap.DeliveryFee, _ = strconv.ParseFloat(fields["delivery_fee"], 64)
	snap.CommissionRate, _ = strconv.ParseFloat(fields["commission_rate"], 64)
	if sec, err := strconv.ParseInt(fields["created_at"], 10, 64); err == nil {
		snap.CreatedAt = time.Unix(sec, 0).UTC()
	}
	if sec, err := strconv.ParseInt(fields["updated_at"], 10, 64); err == nil {
		snap.UpdatedAt = time.Unix(sec, 0).UTC()
	}
	return snap, nil
}

// UpdatePool adds the order while it sits in ready and drops it the
// moment any later event lands, so couriers never race over stale rows.
func (s *ProjectionStore) UpdatePool(orderID string, createdAt time.Time, ready bool) error {
	if ready {
		return s.rdb.ZAdd(s.ctx, poolKey, redis.Z{
			Score:  float64(createdAt.Unix()),
			Member: orderID,
		}).Err()
	}
	return s.rdb.ZRem(s.ctx, poolKey, orderID).Err()
}

func (s *ProjectionStore) PoolIDs() ([]string, error) {
	return s.rdb.ZRange(s.ctx, poolKey, 0, -1).Result()
}

func (s *ProjectionStore) SyncBuckets(restaurantID string, b domain.Buckets) error {
	return s.rdb.HSet(s.ctx, bucketsKey(restaurantID), map[string]interface{}{
		"pending": b.Pending,
		"cooking": b.Cooking,
		"ready":   b.Ready,
	}).Err()
}

func (s *ProjectionStore) GetBuckets(restaurantID string) (domain.Buckets, error) {
	fields, err := s.rdb.HGetAll(s.ctx, bucketsKey(restaurantID)).Result()
	if err != nil {
		return domain.Buckets{}, err
	}
	var b domain.Buckets
	b.Pending, _ = strconv.Atoi(fields["pending"])
	b.Cooking, _ = strconv.Atoi(fields["cooking"])
	b.Ready, _ = strconv.Atoi(fields["ready"])
	return b, nil
}

func (s *ProjectionStore) SetClientActive(clientID, orderID string, active bool) error {
	if active {
		return s.rdb.SAdd(s.ctx, activeKey(clientID), orderID).Err()
	}
	return s.rdb.SRem(s.ctx, activeKey(clientID), orderID).Err()
}

func (s *ProjectionStore) ActiveOrderIDs(clientID string) ([]string, error) {
	return s.rdb.SMembers(s.ctx, activeKey(clientID)).Result()
}

func (s *ProjectionStore) RecordDelivery(courierID, orderID string, at time.Time) error {
	return s.rdb.ZAdd(s.ctx, courierKey(courierID), redis.Z{
		Score:  float64(at.Unix()),
		Member: orderID,
	}).Err()
}

func (s *ProjectionStore) DeliveryIDs(courierID string) ([]string, error) {
	// newest first
	return s.rdb.ZRevRange(s.ctx, courierKey(courierID), 0, -1).Result()
}

// RecordEarnings settles one delivered order into the restaurant's
// daily counters and the platform's daily leaderboard.
func (s *ProjectionStore) RecordEarnings(restaurantID, date string, gross, commission, net float64) error {
	key := earningsKey(restaurantID, date)
	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(s.ctx, key, "orders", 1)
	pipe.HIncrByFloat(s.ctx, key, "gross", gross)
	pipe.HIncrByFloat(s.ctx, key, "commission", commission)
	pipe.HIncrByFloat(s.ctx, key, "net", net)
	pipe.Expire(s.ctx, key, 45*24*time.Hour)
	pipe.ZIncrBy(s.ctx, "earnings:top:"+date, net, restaurantID)
	pipe.Expire(s.ctx, "earnings:top:"+date, 45*24*time.Hour)
	_, err := pipe.Exec(s.ctx)
	return err
}

// TopEarners lists restaurants by settled net for one day, best first.
func (s *ProjectionStore) TopEarners(date string, limit int) ([]domain.EarningsRank, error) {
	entries, err := s.rdb.ZRevRangeWithScores(s.ctx, "earnings:top:"+date, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	ranking := []domain.EarningsRank{}
	for _, entry := range entries {
		ranking = append(ranking, domain.EarningsRank{
			RestaurantID: entry.Member.(string),
			Net:          entry.Score,
		})
	}
	return ranking, nil
}

func (s *ProjectionStore) GetEarnings(restaurantID, date string) (domain.Earnings, error) {
	fields, err := s.rdb.HGetAll(s.ctx, earningsKey(restaurantID, date)).Result()
	if err != nil {
		return domain.Earnings{}, err
	}
	e := domain.Earnings{Date: date}
	e.Orders, _ = strconv.Atoi(fields["orders"])
	e.Gross, _ = strconv.ParseFloat(fields["gross"], 64)
	e.Commission, _ = strconv.ParseFloat(fields["commission"], 64)
	e.Net, _ = strconv.ParseFloat(fields["net"], 64)
	return e, nil
}
