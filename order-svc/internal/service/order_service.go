package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"repartoya/order-svc/internal/domain"
	"repartoya/order-svc/internal/lifecycle"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthorizedActor = errors.New("actor not authorized for this transition")
	ErrOrderTaken        = errors.New("order was already taken by another courier")
	ErrStatusConflict    = errors.New("order status changed underneath this request")
	ErrOrderFinal        = errors.New("order already reached a terminal status")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrMissingAddress    = errors.New("delivery address is blank")
	ErrBadLineItem       = errors.New("line item has invalid quantity or price")
	ErrBadPrepTime       = errors.New("prep time must be a positive number of minutes")
	ErrNoPaymentLink     = errors.New("no payment link available for this order")
)

// defaultDeliveryFee is the platform fallback when a courier accepts
// without naming a fee.
const defaultDeliveryFee = 500

// defaultPrepTime is the initial estimate shown to the client until the
// restaurant adjusts it.
const defaultPrepTime = 30

type CreateOrderInput struct {
	RestaurantID string             `json:"restaurant_id"`
	Items        []domain.OrderItem `json:"items"`
	Address      string             `json:"address"`
	PayMethod    domain.PayMethod   `json:"pay_method"`
}

type OrderService struct {
	repository  OrderRepository
	profiles    ProfileRepository
	config      ConfigRepository
	restaurants RestaurantDirectory
	claims      ClaimCache
	publisher   OrderPublisher
}

func NewOrderService(repository OrderRepository, profiles ProfileRepository, config ConfigRepository, restaurants RestaurantDirectory, claims ClaimCache, publisher OrderPublisher) *OrderService {
	return &OrderService{
		repository:  repository,
		profiles:    profiles,
		config:      config,
		restaurants: restaurants,
		claims:      claims,
		publisher:   publisher,
	}
}

// Create validates the payload, freezes the total from the submitted line
// items and inserts the order as pending.
func (s *OrderService) Create(ctx context.Context, actor domain.Actor, input CreateOrderInput) (*domain.Order, error) {
	if actor.Role != domain.RoleClient {
		return nil, ErrUnauthorizedActor
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, ErrMissingAddress
	}

	var total float64
	for _, item := range input.Items {
		if item.Quantity < 1 || item.UnitPrice < 0 {
			return nil, ErrBadLineItem
		}
		total += float64(item.Quantity) * item.UnitPrice
	}

	payMethod := input.PayMethod
	if payMethod != domain.PayDebit {
		payMethod = domain.PayCash
	}

	order := &domain.Order{
		ID:           uuid.NewString(),
		ClientID:     actor.ID,
		RestaurantID: input.RestaurantID,
		Items:        input.Items,
		Total:        total,
		Address:      input.Address,
		PayMethod:    payMethod,
		Status:       domain.StatusPending,
		PrepTime:     defaultPrepTime,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repository.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	s.publish(ctx, domain.EventOrderCreated, order, "", domain.StatusPending, actor)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repository.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Transition moves an order along one edge of the lifecycle graph. The
// write is conditional on the status the caller observed, so a repeated
// request is rejected rather than applied twice.
func (s *OrderService) Transition(ctx context.Context, actor domain.Actor, id string, to domain.Status) (*domain.Order, error) {
	if to == domain.StatusPicked {
		// picked requires courier side data; Accept is the only path.
		return nil, ErrInvalidTransition
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Validate(order.Status, to, actor.Role); err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrWrongActor):
			return nil, ErrUnauthorizedActor
		default:
			return nil, ErrInvalidTransition
		}
	}
	if err := s.checkOwnership(ctx, order, actor); err != nil {
		return nil, err
	}

	from := order.Status
	var changed bool
	if to == domain.StatusDelivered {
		rate, err := s.config.CommissionRate(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read commission rate: %w", err)
		}
		changed, err = s.repository.CompleteOrder(ctx, id, rate)
		if err != nil {
			return nil, err
		}
		order.CommissionRate = rate
	} else {
		changed, err = s.repository.UpdateStatus(ctx, id, from, to)
		if err != nil {
			return nil, err
		}
	}
	if !changed {
		return nil, ErrStatusConflict
	}

	order.Status = to
	s.publish(ctx, domain.EventStatusChanged, order, from, to, actor)
	return order, nil
}

// Accept is the contested ready→picked transition. A short-lived Redis
// claim filters obvious losers; the conditional update decides the winner.
func (s *OrderService) Accept(ctx context.Context, actor domain.Actor, id string, fee float64) (*domain.Order, error) {
	if actor.Role != domain.RoleCourier {
		return nil, ErrUnauthorizedActor
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.DeliveryID != "" {
		return nil, ErrOrderTaken
	}
	if err := lifecycle.Validate(order.Status, domain.StatusPicked, actor.Role); err != nil {
		return nil, ErrInvalidTransition
	}

	if fee <= 0 {
		fee = defaultDeliveryFee
	}

	// Leniency inherited from the product: a courier without a profile can
	// still deliver, the contact snapshot is just empty.
	var phone string
	if profile, err := s.profiles.GetProfile(ctx, actor.ID); err == nil && profile != nil {
		phone = profile.Phone
	}

	claimKey := s.claims.ClaimKey(id)
	acquired, err := s.claims.AcquireClaim(ctx, claimKey, actor.ID)
	if err == nil && !acquired {
		return nil, ErrOrderTaken
	}

	won, err := s.repository.ClaimForPickup(ctx, id, actor.ID, fee, phone)
	if err != nil {
		_ = s.claims.ReleaseClaim(ctx, claimKey)
		return nil, err
	}
	if !won {
		return nil, ErrOrderTaken
	}

	from := order.Status
	order.Status = domain.StatusPicked
	order.DeliveryID = actor.ID
	order.DeliveryFee = fee
	order.DeliveryPhone = phone

	s.publish(ctx, domain.EventStatusChanged, order, from, domain.StatusPicked, actor)
	return order, nil
}

// Cancel is only legal while the restaurant has not acted on the order.
func (s *OrderService) Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Order, error) {
	return s.Transition(ctx, actor, id, domain.StatusCancelled)
}

func (s *OrderService) SetPrepTime(ctx context.Context, actor domain.Actor, id string, minutes int) error {
	if minutes <= 0 {
		return ErrBadPrepTime
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleRestaurant {
		return ErrUnauthorizedActor
	}
	if err := s.checkOwnership(ctx, order, actor); err != nil {
		return err
	}

	changed, err := s.repository.SetPrepTime(ctx, id, minutes)
	if err != nil {
		return err
	}
	if !changed {
		return ErrOrderFinal
	}
	return nil
}

// ListForActor returns the caller's own orders: a client's purchases, a
// restaurant's incoming orders, a courier's claimed deliveries.
func (s *OrderService) ListForActor(ctx context.Context, actor domain.Actor) ([]domain.Order, error) {
	switch actor.Role {
	case domain.RoleClient:
		return s.repository.ListByClient(ctx, actor.ID)
	case domain.RoleRestaurant:
		restaurantID, err := s.restaurantFor(ctx, actor)
		if err != nil {
			return nil, err
		}
		return s.repository.ListByRestaurant(ctx, restaurantID)
	case domain.RoleCourier:
		return s.repository.ListByCourier(ctx, actor.ID)
	default:
		return nil, ErrUnauthorizedActor
	}
}

// PickupPool lists orders every courier is racing for: ready, unassigned.
func (s *OrderService) PickupPool(ctx context.Context) ([]domain.Order, error) {
	return s.repository.ListPickupPool(ctx)
}

// PaymentQR encodes the assigned courier's P2P payment link for debit
// orders as a PNG QR code.
func (s *OrderService) PaymentQR(ctx context.Context, id string) ([]byte, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.DeliveryID == "" || order.PayMethod != domain.PayDebit {
		return nil, ErrNoPaymentLink
	}

	profile, err := s.profiles.GetProfile(ctx, order.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load courier profile: %w", err)
	}
	if profile == nil || profile.PaymentLink == "" {
		return nil, ErrNoPaymentLink
	}

	return qrcode.Encode(profile.PaymentLink, qrcode.Medium, 256)
}

// restaurantFor resolves the caller's registered restaurant, refusing
// restaurant-role claims that own none.
func (s *OrderService) restaurantFor(ctx context.Context, actor domain.Actor) (string, error) {
	restaurantID, err := s.restaurants.RestaurantIDForOwner(ctx, actor.ID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve restaurant for owner: %w", err)
	}
	if restaurantID == "" {
		return "", ErrUnauthorizedActor
	}
	return restaurantID, nil
}

func (s *OrderService) checkOwnership(ctx context.Context, order *domain.Order, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleClient:
		if actor.ID != order.ClientID {
			return ErrUnauthorizedActor
		}
	case domain.RoleRestaurant:
		restaurantID, err := s.restaurantFor(ctx, actor)
		if err != nil {
			return err
		}
		if restaurantID != order.RestaurantID {
			return ErrUnauthorizedActor
		}
	case domain.RoleCourier:
		if actor.ID != order.DeliveryID {
			return ErrUnauthorizedActor
		}
	default:
		return ErrUnauthorizedActor
	}
	return nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order, from, to domain.Status, actor domain.Actor) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:           eventType,
		OrderID:        order.ID,
		ClientID:       order.ClientID,
		RestaurantID:   order.RestaurantID,
		DeliveryID:     order.DeliveryID,
		From:           from,
		To:             to,
		Total:          order.Total,
		DeliveryFee:    order.DeliveryFee,
		CommissionRate: order.CommissionRate,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		CreatedAt:      order.CreatedAt,
		Timestamp:      time.Now().UTC(),
	})
}
