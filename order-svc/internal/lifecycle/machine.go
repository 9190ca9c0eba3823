// Package lifecycle defines the order status graph: which transitions are
// legal and which role may perform each one. It is pure rule-checking; the
// service layer does ownership checks and the conditional writes.
package lifecycle

import (
	"errors"

	"repartoya/order-svc/internal/domain"
)

var (
	ErrInvalidTransition = errors.New("transition is not defined for the current status")
	ErrWrongActor        = errors.New("actor role is not allowed to perform this transition")
)

type edge struct {
	from, to domain.Status
}

// transitions maps every legal edge to the single role allowed to take it.
// Orders always start at pending; rejected is reachable from pending only,
// cancelled from pending only, so neither can fire on an order a courier
// already sees in the pickup pool.
var transitions = map[edge]domain.Role{
	{domain.StatusPending, domain.StatusAccepted}:     domain.RoleRestaurant,
	{domain.StatusPending, domain.StatusRejected}:     domain.RoleRestaurant,
	{domain.StatusPending, domain.StatusCancelled}:    domain.RoleClient,
	{domain.StatusAccepted, domain.StatusPreparing}:   domain.RoleRestaurant,
	{domain.StatusPreparing, domain.StatusReady}:      domain.RoleRestaurant,
	{domain.StatusReady, domain.StatusPicked}:         domain.RoleCourier,
	{domain.StatusPicked, domain.StatusDelivering}:    domain.RoleCourier,
	{domain.StatusDelivering, domain.StatusDelivered}: domain.RoleCourier,
}

// Validate reports whether role may move an order from one status to
// another. A missing edge wins over a wrong actor: requesting an undefined
// transition is ErrInvalidTransition regardless of who asks.
func Validate(from, to domain.Status, role domain.Role) error {
	allowed, ok := transitions[edge{from, to}]
	if !ok {
		return ErrInvalidTransition
	}
	if role != allowed {
		return ErrWrongActor
	}
	return nil
}

// Allowed lists the statuses role may move an order in status from to.
func Allowed(from domain.Status, role domain.Role) []domain.Status {
	var out []domain.Status
	for e, r := range transitions {
		if e.from == from && r == role {
			out = append(out, e.to)
		}
	}
	return out
}

// progressSteps is the fixed scale the tracking UI renders. pending maps to
// 0%; rejected and cancelled are off the scale.
var progressSteps = []domain.Status{
	domain.StatusAccepted,
	domain.StatusPreparing,
	domain.StatusReady,
	domain.StatusPicked,
	domain.StatusDelivered,
}

// Progress returns the percent complete for s. Statuses off the scale
// (pending, delivering, rejected, cancelled) map to 0.
func Progress(s domain.Status) int {
	for i, step := range progressSteps {
		if s == step {
			return (i + 1) * 100 / len(progressSteps)
		}
	}
	return 0
}
