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

const (
	DefaultPerPage = 50
	// MaxPerPage bounds a single admin table read.
	MaxPerPage = 500
)

var (
	ErrInvalidStatusFilter = errs.NewValidation("invalid status filter")
	ErrBookingNotFound     = errs.NewNotFound("booking not found")
)

// ListParams is what an admin table sends: free-text search, filters and a page.
type ListParams struct {
	Query   string
	Status  string
	Flag    *bool
	Page    int
	PerPage int
}

func (p ListParams) Normalize() ListParams {
	p.Query = strings.TrimSpace(p.Query)
	p.Status = strings.TrimSpace(p.Status)
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PerPage <= 0:
		p.PerPage = DefaultPerPage
	case p.PerPage > MaxPerPage:
		p.PerPage = MaxPerPage
	}
	return p
}

func (p ListParams) filter() ListFilter {
	return ListFilter{
		Search: p.Query,
		Status: p.Status,
		Flag:   p.Flag,
		Limit:  p.PerPage,
		Offset: (p.Page - 1) * p.PerPage,
	}
}

// ListFilter is the SQL-level form of ListParams.
type ListFilter struct {
	Search string
	Status string
	Flag   *bool
	Limit  int
	Offset int
}

type Page[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type AdminSummary struct {
	PendingBookings int   `json:"pending_bookings"`
	TodayBookings   int   `json:"today_bookings"`
	Clients         int   `json:"clients"`
	MonthRevenue    int64 `json:"month_revenue"`
}

type AdminReadStore interface {
	Bookings(ctx context.Context, f ListFilter) ([]BookingView, int, error)
	Clients(ctx context.Context, f ListFilter) ([]ClientView, int, error)
	Masters(ctx context.Context, f ListFilter) ([]MasterView, int, error)
	Services(ctx context.Context, f ListFilter) ([]ServiceView, int, error)
	Categories(ctx context.Context, f ListFilter) ([]CategoryView, int, error)
	Promotions(ctx context.Context, f ListFilter) ([]PromotionView, int, error)
	Reviews(ctx context.Context, f ListFilter) ([]ReviewView, int, error)
	Gallery(ctx context.Context, f ListFilter) ([]GalleryView, int, error)
	Blacklist(ctx context.Context, f ListFilter) ([]BlacklistView, int, error)
	Summary(ctx context.Context, dayStart, monthStart time.Time) (*AdminSummary, error)
}

type AdminQueries interface {
	Bookings(ctx context.Context, p ListParams) (*Page[BookingView], error)
	Booking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Clients(ctx context.Context, p ListParams) (*Page[ClientView], error)
	Masters(ctx context.Context, p ListParams) (*Page[MasterView], error)
	Services(ctx context.Context, p ListParams) (*Page[ServiceView], error)
	Categories(ctx context.Context, p ListParams) (*Page[CategoryView], error)
	Promotions(ctx context.Context, p ListParams) (*Page[PromotionView], error)
	Reviews(ctx context.Context, p ListParams) (*Page[ReviewView], error)
	Gallery(ctx context.Context, p ListParams) (*Page[GalleryView], error)
	Blacklist(ctx context.Context, p ListParams) (*Page[BlacklistView], error)
	Summary(ctx context.Context) (*AdminSummary, error)
}

type adminQueriesImpl struct {
	store    AdminReadStore
	bookings BookingReadStore
	clock    clock.Clock
	loc      *time.Location
}

func NewAdminQueries(store AdminReadStore, bookings BookingReadStore, clk clock.Clock, loc *time.Location) AdminQueries {
	return &adminQueriesImpl{store: store, bookings: bookings, clock: clk, loc: loc}
}

func listPage[T any](ctx context.Context, p ListParams, load func(context.Context, ListFilter) ([]T, int, error)) (*Page[T], error) {
	p = p.Normalize()
	items, total, err := load(ctx, p.filter())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total, Page: p.Page, PerPage: p.PerPage}, nil
}

func (q *adminQueriesImpl) Bookings(ctx context.Context, p ListParams) (*Page[BookingView], error) {
	if p.Status != "" {
		if _, err := booking.NewStatus(p.Status); err != nil {
			return nil, ErrInvalidStatusFilter
		}
	}
	page, err := listPage(ctx, p, q.store.Bookings)
	if err != nil {
		return nil, err
	}
	for i := range page.Items {
		page.Items[i] = page.Items[i].withLabels(q.loc)
	}
	return page, nil
}

func (q *adminQueriesImpl) Booking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	view := b.withLabels(q.loc)
	return &view, nil
}

func (q *adminQueriesImpl) Clients(ctx context.Context, p ListParams) (*Page[ClientView], error) {
	return listPage(ctx, p, q.store.Clients)
}

func (q *adminQueriesImpl) Masters(ctx context.Context, p ListParams) (*Page[MasterView], error) {
	return listPage(ctx, p, q.store.Masters)
}

func (q *adminQueriesImpl) Services(ctx context.Context, p ListParams) (*Page[ServiceView], error) {
	page, err := listPage(ctx, p, q.store.Services)
	if err != nil {
		return nil, err
	}
	for i := range page.Items {
		page.Items[i] = page.Items[i].withLabels()
	}
	return page, nil
}

func (q *adminQueriesImpl) Categories(ctx context.Context, p ListParams) (*Page[CategoryView], error) {
	return listPage(ctx, p, q.store.Categories)
}

func (q *adminQueriesImpl) Promotions(ctx context.Context, p ListParams) (*Page[PromotionView], error) {
	return listPage(ctx, p, q.store.Promotions)
}

func (q *adminQueriesImpl) Reviews(ctx context.Context, p ListParams) (*Page[ReviewView], error) {
	return listPage(ctx, p, q.store.Reviews)
}

func (q *adminQueriesImpl) Gallery(ctx context.Context, p ListParams) (*Page[GalleryView], error) {
	return listPage(ctx, p, q.store.Gallery)
}

func (q *adminQueriesImpl) Blacklist(ctx context.Context, p ListParams) (*Page[BlacklistView], error) {
	return listPage(ctx, p, q.store.Blacklist)
}

func (q *adminQueriesImpl) Summary(ctx context.Context) (*AdminSummary, error) {
	now := q.clock.Now().In(q.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, q.loc)
	return q.store.Summary(ctx, clock.StartOfDay(now, q.loc), monthStart)
}
