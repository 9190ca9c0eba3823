package domain

import "time"

// OrderEvent mirrors the payload order-svc publishes on the orders topic.
type OrderEvent struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	ClientID       string    `json:"client_id"`
	RestaurantID   string    `json:"restaurant_id"`
	DeliveryID     string    `json:"delivery_id,omitempty"`
	From           string    `json:"from,omitempty"`
	To             string    `json:"to"`
	Total          float64   `json:"total"`
	DeliveryFee    float64   `json:"delivery_fee"`
	CommissionRate float64   `json:"commission_rate,omitempty"`
	ActorID        string    `json:"actor_id"`
	ActorRole      string    `json:"actor_role"`
	CreatedAt      time.Time `json:"order_created_at"`
	Timestamp      time.Time `json:"timestamp"`
}

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
	StatusPreparing  = "preparing"
	StatusReady      = "ready"
	StatusPicked     = "picked"
	StatusDelivering = "delivering"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// statusRank orders statuses along the lifecycle so the reconciler can
// tell a stale or duplicated event from a genuine advance.
var statusRank = map[string]int{
	StatusPending:    0,
	StatusAccepted:   1,
	StatusPreparing:  2,
	StatusReady:      3,
	StatusPicked:     4,
	StatusDelivering: 5,
	StatusDelivered:  6,
	StatusRejected:   6,
	StatusCancelled:  6,
}

func StatusRank(status string) int {
	rank, ok := statusRank[status]
	if !ok {
		return -1
	}
	return rank
}

func IsTerminal(status string) bool {
	return status == StatusDelivered || status == StatusRejected || status == StatusCancelled
}

// OrderSnapshot is the reconciled view of one order, built purely from
// the event stream.
type OrderSnapshot struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client_id"`
	RestaurantID   string    `json:"restaurant_id"`
	DeliveryID     string    `json:"delivery_id,omitempty"`
	Status         string    `json:"status"`
	Total          float64   `json:"total"`
	DeliveryFee    float64   `json:"delivery_fee"`
	CommissionRate float64   `json:"commission_rate,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Buckets is the restaurant dashboard summary: how many orders are
// waiting for a decision, on the fire, and boxed up for pickup.
type Buckets struct {
	Pending int `json:"pending"`
	Cooking int `json:"cooking"`
	Ready   int `json:"ready"`
}

// EarningsRank is one row of the daily restaurant leaderboard.
type EarningsRank struct {
	RestaurantID string  `json:"restaurant_id"`
	Net          float64 `json:"net"`
}

// Earnings is one restaurant's settled totals for a single day.
type Earnings struct {
	Date       string  `json:"date"`
	Orders     int     `json:"orders"`
	Gross      float64 `json:"gross"`
	Commission float64 `json:"commission"`
	Net        float64 `json:"net"`
}
