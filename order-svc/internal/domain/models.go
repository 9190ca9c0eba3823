package domain

import "time"

// Status is the lifecycle state of an order. Transitions between statuses
// are validated by the lifecycle package.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusPreparing  Status = "preparing"
	StatusReady      Status = "ready"
	StatusPicked     Status = "picked"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusPreparing, StatusReady,
		StatusPicked, StatusDelivering, StatusDelivered, StatusRejected, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusRejected || s == StatusCancelled
}

type Role string

const (
	RoleClient     Role = "client"
	RoleRestaurant Role = "restaurant"
	RoleCourier    Role = "delivery"
	RoleAdmin      Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleRestaurant, RoleCourier, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Actor is the authenticated caller of an operation, resolved once at the
// gateway from auth claims and forwarded as identity headers.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

type PayMethod string

const (
	PayCash  PayMethod = "cash"
	PayDebit PayMethod = "debit"
)

type Order struct {
	ID            string      `json:"id"`
	ClientID      string      `json:"client_id"`
	RestaurantID  string      `json:"restaurant_id"`
	DeliveryID    string      `json:"delivery_id,omitempty"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	DeliveryFee   float64     `json:"delivery_fee"`
	DeliveryPhone string      `json:"delivery_phone,omitempty"`
	Address       string      `json:"address"`
	PayMethod     PayMethod   `json:"pay_method"`
	Status        Status      `json:"status"`
	PrepTime      int         `json:"prep_time"`
	// CommissionRate is snapshotted onto the order at the delivered
	// transition so historical earnings survive later rate changes.
	CommissionRate float64   `json:"commission_rate,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderItem is a line item with name and unit price frozen at order time.
type OrderItem struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type Profile struct {
	ID          string `json:"id"`
	Role        Role   `json:"role"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	PaymentLink string `json:"payment_link,omitempty"`
}

// OrderEvent is published to Kafka on every order insert or status change.
type OrderEvent struct {
	Type           string    `json:"type"` // order_created | status_changed
	OrderID        string    `json:"order_id"`
	ClientID       string    `json:"client_id"`
	RestaurantID   string    `json:"restaurant_id"`
	DeliveryID     string    `json:"delivery_id,omitempty"`
	From           Status    `json:"from,omitempty"`
	To             Status    `json:"to"`
	Total          float64   `json:"total"`
	DeliveryFee    float64   `json:"delivery_fee"`
	CommissionRate float64   `json:"commission_rate,omitempty"`
	ActorID        string    `json:"actor_id"`
	ActorRole      Role      `json:"actor_role"`
	CreatedAt      time.Time `json:"order_created_at"`
	Timestamp      time.Time `json:"timestamp"`
}

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)
