package service

import (
	"sync"

	"repartoya/feed-svc/internal/domain"
)

// State is the reconciled in-memory view of live orders, keyed by order
// id. Events are upserted into the map rather than replacing it, so
// duplicated and out-of-order deliveries from the topic are harmless.
type State struct {
	mu     sync.Mutex
	orders map[string]domain.OrderSnapshot
}

func NewState() *State {
	return &State{orders: make(map[string]domain.OrderSnapshot)}
}

// Apply merges one event into the map. It reports false when the event
// is a duplicate or arrives behind a later one for the same order.
func (s *State) Apply(event domain.OrderEvent) (domain.OrderSnapshot, bool) {
	next := domain.OrderSnapshot{
		ID:             event.OrderID,
		ClientID:       event.ClientID,
		RestaurantID:   event.RestaurantID,
		DeliveryID:     event.DeliveryID,
		Status:         event.To,
		Total:          event.Total,
		DeliveryFee:    event.DeliveryFee,
		CommissionRate: event.CommissionRate,
		CreatedAt:      event.CreatedAt,
		UpdatedAt:      event.Timestamp,
	}
	if domain.StatusRank(next.Status) < 0 {
		return domain.OrderSnapshot{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.orders[event.OrderID]; ok {
		if domain.StatusRank(next.Status) <= domain.StatusRank(current.Status) {
			return domain.OrderSnapshot{}, false
		}
		// later events may omit fields set earlier in the lifecycle
		if next.DeliveryID == "" {
			next.DeliveryID = current.DeliveryID
		}
		if next.DeliveryFee == 0 {
			next.DeliveryFee = current.DeliveryFee
		}
	}

	s.orders[event.OrderID] = next
	return next, true
}

// BucketsFor recomputes the restaurant's dashboard counters from the
// reconciled map instead of incrementing blindly, which keeps them
// correct under redelivery.
func (s *State) BucketsFor(restaurantID string) domain.Buckets {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b domain.Buckets
	for _, snap := range s.orders {
		if snap.RestaurantID != restaurantID {
			continue
		}
		switch snap.Status {
		case domain.StatusPending:
			b.Pending++
		case domain.StatusAccepted, domain.StatusPreparing:
			b.Cooking++
		case domain.StatusReady:
			b.Ready++
		}
	}
	return b
}

func (s *State) Get(orderID string) (domain.OrderSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.orders[orderID]
	return snap, ok
}
