package queries

import (
	"context"
	"slices"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/client"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// FindForClient matches bookings by user id or by the contact email or phone, newest first.
	FindForClient(ctx context.Context, userID uuid.UUID, email, phone string) ([]BookingView, error)
	// FindForMaster returns the master's bookings and unassigned ones starting in [from, to), oldest first.
	FindForMaster(ctx context.Context, masterID uuid.UUID, from, to time.Time) ([]BookingView, error)
}

type ClientBookingView struct {
	BookingView
	Actions   []booking.Status `json:"actions"`
	CanReview bool             `json:"can_review"`
}

type ClientDashboard struct {
	Upcoming []ClientBookingView `json:"upcoming"`
	Past     []ClientBookingView `json:"past"`
	Loyalty  client.LoyaltyCard  `json:"loyalty"`
}

type ClientPanelQueries interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*ClientDashboard, error)
}

type clientPanelQueriesImpl struct {
	users    UserQueries
	bookings BookingReadStore
	clock    clock.Clock
	loc      *time.Location
}

func NewClientPanelQueries(users UserQueries, bookings BookingReadStore, clk clock.Clock, loc *time.Location) ClientPanelQueries {
	return &clientPanelQueriesImpl{users: users, bookings: bookings, clock: clk, loc: loc}
}

func (q *clientPanelQueriesImpl) Dashboard(ctx context.Context, userID uuid.UUID) (*ClientDashboard, error) {
	u, err := q.users.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := q.bookings.FindForClient(ctx, u.ID, u.Email, u.Phone)
	if err != nil {
		return nil, err
	}

	return SplitClientBookings(rows, q.clock.Now(), q.loc), nil
}

// SplitClientBookings separates visits still ahead (from today on, pending or confirmed)
// from everything else and counts completed visits for the loyalty card.
func SplitClientBookings(rows []BookingView, now time.Time, loc *time.Location) *ClientDashboard {
	today := clock.StartOfDay(now, loc)
	d := &ClientDashboard{
		Upcoming: []ClientBookingView{},
		Past:     []ClientBookingView{},
	}

	completed := 0
	for _, b := range rows {
		b = b.withLabels(loc)
		view := ClientBookingView{
			BookingView: b,
			Actions:     booking.AvailableActions(b.Status, booking.ActorClient),
			CanReview:   b.Status == booking.StatusCompleted && !b.Reviewed,
		}
		if b.Status == booking.StatusCompleted {
			completed++
		}
		if !b.StartsAt.Before(today) && b.Status.IsActive() {
			d.Upcoming = append(d.Upcoming, view)
		} else {
			d.Past = append(d.Past, view)
		}
	}

	slices.SortStableFunc(d.Upcoming, func(a, b ClientBookingView) int {
		return a.StartsAt.Compare(b.StartsAt)
	})
	slices.SortStableFunc(d.Past, func(a, b ClientBookingView) int {
		return b.StartsAt.Compare(a.StartsAt)
	})

	d.Loyalty = client.NewLoyaltyCard(completed)
	return d
}
