package service

import (
	"context"

	"repartoya/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, actor domain.Actor, input CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Transition(ctx context.Context, actor domain.Actor, id string, to domain.Status) (*domain.Order, error)
	Accept(ctx context.Context, actor domain.Actor, id string, fee float64) (*domain.Order, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Order, error)
	SetPrepTime(ctx context.Context, actor domain.Actor, id string, minutes int) error
	ListForActor(ctx context.Context, actor domain.Actor) ([]domain.Order, error)
	PickupPool(ctx context.Context) ([]domain.Order, error)
	PaymentQR(ctx context.Context, id string) ([]byte, error)
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// UpdateStatus applies a conditional status write keyed on the expected
	// current status and reports whether a row was changed.
	UpdateStatus(ctx context.Context, id string, from, to domain.Status) (bool, error)
	// CompleteOrder is UpdateStatus(delivering, delivered) plus the
	// commission-rate snapshot, in one statement.
	CompleteOrder(ctx context.Context, id string, rate float64) (bool, error)
	// ClaimForPickup assigns a courier only where status is still ready and
	// no courier holds the order. Returns false when the claim lost.
	ClaimForPickup(ctx context.Context, id, courierID string, fee float64, phone string) (bool, error)
	// SetPrepTime updates prep_time only while the order is not terminal.
	SetPrepTime(ctx context.Context, id string, minutes int) (bool, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error)
	ListByCourier(ctx context.Context, courierID string) ([]domain.Order, error)
	ListPickupPool(ctx context.Context) ([]domain.Order, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
}

type ConfigRepository interface {
	CommissionRate(ctx context.Context) (float64, error)
}

// RestaurantDirectory resolves a restaurant-role caller to the restaurant
// row orders reference. Claim headers carry the owner's user id, while
// orders store the restaurant id minted at registration, so the two never
// compare equal directly.
type RestaurantDirectory interface {
	RestaurantIDForOwner(ctx context.Context, ownerID string) (string, error)
}

// ClaimCache is a fast pre-check in front of the database claim so the
// second of two near-simultaneous couriers fails before the round-trip.
// The conditional update in OrderRepository stays authoritative.
type ClaimCache interface {
	ClaimKey(orderID string) string
	AcquireClaim(ctx context.Context, key, courierID string) (bool, error)
	ReleaseClaim(ctx context.Context, key string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
