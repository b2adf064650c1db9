package queries

import (
	"context"
	"strings"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMasterProfileNotFound = errs.NewNotFound("no master profile is linked to this account")

type MasterReadStore interface {
	FindByUserLink(ctx context.Context, userID uuid.UUID) (*MasterView, error)
	FindByEmail(ctx context.Context, email string) (*MasterView, error)
}

type MasterBookingView struct {
	BookingView
	Actions []booking.Status `json:"actions"`
}

type MasterDashboard struct {
	Master MasterView          `json:"master"`
	Today  []MasterBookingView `json:"today"`
	Week   []MasterBookingView `json:"week"`
}

type MasterPanelQueries interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*MasterDashboard, error)
	ResolveMaster(ctx context.Context, userID uuid.UUID) (*MasterView, error)
}

type masterPanelQueriesImpl struct {
	users    UserQueries
	masters  MasterReadStore
	bookings BookingReadStore
	clock    clock.Clock
	loc      *time.Location
}

func NewMasterPanelQueries(users UserQueries, masters MasterReadStore, bookings BookingReadStore, clk clock.Clock, loc *time.Location) MasterPanelQueries {
	return &masterPanelQueriesImpl{users: users, masters: masters, bookings: bookings, clock: clk, loc: loc}
}

// ResolveMaster prefers an explicit account link and falls back to a master with the same email.
func (q *masterPanelQueriesImpl) ResolveMaster(ctx context.Context, userID uuid.UUID) (*MasterView, error) {
	m, err := q.masters.FindByUserLink(ctx, userID)
	if err == nil {
		return m, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	u, err := q.users.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(u.Email) == "" {
		return nil, ErrMasterProfileNotFound
	}

	m, err = q.masters.FindByEmail(ctx, u.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMasterProfileNotFound
		}
		return nil, err
	}
	return m, nil
}

func (q *masterPanelQueriesImpl) Dashboard(ctx context.Context, userID uuid.UUID) (*MasterDashboard, error) {
	m, err := q.ResolveMaster(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	weekStart := clock.StartOfWeek(now, q.loc)
	rows, err := q.bookings.FindForMaster(ctx, m.ID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	today := clock.StartOfDay(now, q.loc)
	tomorrow := today.AddDate(0, 0, 1)

	d := &MasterDashboard{
		Master: *m,
		Today:  []MasterBookingView{},
		Week:   make([]MasterBookingView, 0, len(rows)),
	}
	for _, b := range rows {
		view := MasterBookingView{
			BookingView: b.withLabels(q.loc),
			Actions:     booking.AvailableActions(b.Status, booking.ActorMaster),
		}
		d.Week = append(d.Week, view)
		if !b.StartsAt.Before(today) && b.StartsAt.Before(tomorrow) {
			d.Today = append(d.Today, view)
		}
	}
	return d, nil
}
