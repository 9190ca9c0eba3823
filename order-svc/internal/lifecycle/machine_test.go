package lifecycle_test

import (
	"testing"

	"repartoya/order-svc/internal/domain"
	"repartoya/order-svc/internal/lifecycle"

	"github.com/stretchr/testify/assert"
)

func TestValidate_LegalEdges(t *testing.T) {
	legal := []struct {
		from, to domain.Status
		role     domain.Role
	}{
		{domain.StatusPending, domain.StatusAccepted, domain.RoleRestaurant},
		{domain.StatusPending, domain.StatusRejected, domain.RoleRestaurant},
		{domain.StatusPending, domain.StatusCancelled, domain.RoleClient},
		{domain.StatusAccepted, domain.StatusPreparing, domain.RoleRestaurant},
		{domain.StatusPreparing, domain.StatusReady, domain.RoleRestaurant},
		{domain.StatusReady, domain.StatusPicked, domain.RoleCourier},
		{domain.StatusPicked, domain.StatusDelivering, domain.RoleCourier},
		{domain.StatusDelivering, domain.StatusDelivered, domain.RoleCourier},
	}

	for _, tc := range legal {
		assert.NoError(t, lifecycle.Validate(tc.from, tc.to, tc.role),
			"%s -> %s by %s should be legal", tc.from, tc.to, tc.role)
	}
}

func TestValidate_WrongActorIsRejected(t *testing.T) {
	cases := []struct {
		from, to domain.Status
		role     domain.Role
	}{
		{domain.StatusPending, domain.StatusAccepted, domain.RoleClient},
		{domain.StatusPending, domain.StatusCancelled, domain.RoleRestaurant},
		{domain.StatusPreparing, domain.StatusReady, domain.RoleCourier},
		{domain.StatusReady, domain.StatusPicked, domain.RoleRestaurant},
		{domain.StatusDelivering, domain.StatusDelivered, domain.RoleClient},
		{domain.StatusPending, domain.StatusAccepted, domain.RoleAdmin},
	}

	for _, tc := range cases {
		assert.ErrorIs(t, lifecycle.Validate(tc.from, tc.to, tc.role), lifecycle.ErrWrongActor,
			"%s -> %s by %s should fail on actor", tc.from, tc.to, tc.role)
	}
}

func TestValidate_UndefinedEdgesAreRejected(t *testing.T) {
	cases := []struct {
		from, to domain.Status
	}{
		// skipping forward
		{domain.StatusPending, domain.StatusReady},
		{domain.StatusPending, domain.StatusDelivered},
		{domain.StatusAccepted, domain.StatusPicked},
		// backwards
		{domain.StatusReady, domain.StatusPreparing},
		{domain.StatusDelivered, domain.StatusDelivering},
		// cancel window closed after accept
		{domain.StatusAccepted, domain.StatusCancelled},
		// nothing leaves a terminal status
		{domain.StatusDelivered, domain.StatusPending},
		{domain.StatusRejected, domain.StatusAccepted},
		{domain.StatusCancelled, domain.StatusPending},
		// the ready->picked gate cannot be skipped
		{domain.StatusReady, domain.StatusDelivering},
	}

	for _, tc := range cases {
		for _, role := range []domain.Role{domain.RoleClient, domain.RoleRestaurant, domain.RoleCourier, domain.RoleAdmin} {
			assert.ErrorIs(t, lifecycle.Validate(tc.from, tc.to, role), lifecycle.ErrInvalidTransition,
				"%s -> %s should be undefined for every role", tc.from, tc.to)
		}
	}
}

// A restaurant can never reject an order a courier already sees in the
// pickup pool: rejected is reachable from pending only.
func TestValidate_RejectUnreachableAfterPending(t *testing.T) {
	for _, from := range []domain.Status{
		domain.StatusAccepted, domain.StatusPreparing, domain.StatusReady,
		domain.StatusPicked, domain.StatusDelivering,
	} {
		assert.ErrorIs(t, lifecycle.Validate(from, domain.StatusRejected, domain.RoleRestaurant),
			lifecycle.ErrInvalidTransition, "reject from %s must be undefined", from)
	}
}

func TestAllowed(t *testing.T) {
	assert.ElementsMatch(t,
		[]domain.Status{domain.StatusAccepted, domain.StatusRejected},
		lifecycle.Allowed(domain.StatusPending, domain.RoleRestaurant))
	assert.ElementsMatch(t,
		[]domain.Status{domain.StatusCancelled},
		lifecycle.Allowed(domain.StatusPending, domain.RoleClient))
	assert.Empty(t, lifecycle.Allowed(domain.StatusDelivered, domain.RoleCourier))
	assert.Empty(t, lifecycle.Allowed(domain.StatusPending, domain.RoleAdmin))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, lifecycle.Progress(domain.StatusPending))
	assert.Equal(t, 20, lifecycle.Progress(domain.StatusAccepted))
	assert.Equal(t, 40, lifecycle.Progress(domain.StatusPreparing))
	assert.Equal(t, 60, lifecycle.Progress(domain.StatusReady))
	assert.Equal(t, 80, lifecycle.Progress(domain.StatusPicked))
	assert.Equal(t, 100, lifecycle.Progress(domain.StatusDelivered))

	// off the five-step scale
	assert.Equal(t, 0, lifecycle.Progress(domain.StatusRejected))
	assert.Equal(t, 0, lifecycle.Progress(domain.StatusCancelled))
}

func TestTerminal(t *testing.T) {
	for _, s := range []domain.Status{domain.StatusDelivered, domain.StatusRejected, domain.StatusCancelled} {
		assert.True(t, s.IsTerminal())
	}
	for _, s := range []domain.Status{domain.StatusPending, domain.StatusAccepted, domain.StatusPreparing,
		domain.StatusReady, domain.StatusPicked, domain.StatusDelivering} {
		assert.False(t, s.IsTerminal())
	}
}
