//go:build unit

package booking_test

import (
	"testing"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		name    string
		current booking.Status
		next    booking.Status
		actor   booking.Actor
		errIs   error
	}{
		{name: "admin confirms pending", current: booking.StatusPending, next: booking.StatusConfirmed, actor: booking.ActorAdmin},
		{name: "client cancels pending", current: booking.StatusPending, next: booking.StatusCancelled, actor: booking.ActorClient},
		{name: "client confirms pending", current: booking.StatusPending, next: booking.StatusConfirmed, actor: booking.ActorClient},
		{name: "master completes confirmed", current: booking.StatusConfirmed, next: booking.StatusCompleted, actor: booking.ActorMaster},
		{name: "client cancels confirmed", current: booking.StatusConfirmed, next: booking.StatusCancelled, actor: booking.ActorClient},
		{name: "client cannot complete", current: booking.StatusConfirmed, next: booking.StatusCompleted, actor: booking.ActorClient, errIs: booking.ErrIllegalTransition},
		{name: "pending cannot jump to completed", current: booking.StatusPending, next: booking.StatusCompleted, actor: booking.ActorAdmin, errIs: booking.ErrIllegalTransition},
		{name: "confirmed cannot go back to pending", current: booking.StatusConfirmed, next: booking.StatusPending, actor: booking.ActorAdmin, errIs: booking.ErrIllegalTransition},
		{name: "completed is terminal", current: booking.StatusCompleted, next: booking.StatusCancelled, actor: booking.ActorAdmin, errIs: booking.ErrTerminalStatus},
		{name: "cancelled is terminal", current: booking.StatusCancelled, next: booking.StatusConfirmed, actor: booking.ActorAdmin, errIs: booking.ErrTerminalStatus},
		{name: "unknown target", current: booking.StatusPending, next: booking.Status("archived"), actor: booking.ActorAdmin, errIs: booking.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := booking.ChangeStatus(tt.current, tt.next, tt.actor)
			if tt.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestAvailableActions(t *testing.T) {
	assert.Equal(t,
		[]booking.Status{booking.StatusConfirmed, booking.StatusCancelled},
		booking.AvailableActions(booking.StatusPending, booking.ActorClient))
	assert.Equal(t,
		[]booking.Status{booking.StatusCancelled},
		booking.AvailableActions(booking.StatusConfirmed, booking.ActorClient))
	assert.Equal(t,
		[]booking.Status{booking.StatusCompleted, booking.StatusCancelled},
		booking.AvailableActions(booking.StatusConfirmed, booking.ActorMaster))
	assert.Empty(t, booking.AvailableActions(booking.StatusCompleted, booking.ActorAdmin))
}

func TestStatus(t *testing.T) {
	_, err := booking.NewStatus("done")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	s, err := booking.NewStatus("confirmed")
	assert.NoError(t, err)
	assert.True(t, s.IsActive())
	assert.False(t, s.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.True(t, booking.StatusPending.CanTransitionTo(booking.StatusCancelled))
	assert.False(t, booking.StatusPending.CanTransitionTo(booking.StatusCompleted))
}
