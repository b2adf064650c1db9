package queries

import (
	"context"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// DateOptionDays is how far ahead the booking form offers dates.
const (
	DateOptionDays     = 14
	PublicReviewsLimit = 50
)

var (
	ErrServiceNotFound = errs.NewNotFound("service not found")
	ErrMasterNotFound  = errs.NewNotFound("master not found")
)

type CatalogReadStore interface {
	ListActiveServices(ctx context.Context) ([]ServiceView, error)
	ListActiveMasters(ctx context.Context) ([]PublicMasterView, error)
	ListCategories(ctx context.Context) ([]CategoryView, error)
	ListPublishedReviews(ctx context.Context, limit int) ([]ReviewView, error)
	ListCurrentPromotions(ctx context.Context, today time.Time) ([]PromotionView, error)
	ListVisibleGallery(ctx context.Context) ([]GalleryView, error)
}

type SlotsView struct {
	Dates []booking.DateOption `json:"dates"`
	Times []string             `json:"times"`
}

type CatalogQueries interface {
	Services(ctx context.Context) Listing[ServiceView]
	Masters(ctx context.Context) Listing[PublicMasterView]
	Categories(ctx context.Context) Listing[CategoryView]
	Reviews(ctx context.Context) Listing[ReviewView]
	Promotions(ctx context.Context) Listing[PromotionView]
	Gallery(ctx context.Context) Listing[GalleryView]
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, Source, error)
	MasterByID(ctx context.Context, id uuid.UUID) (*PublicMasterView, Source, error)
	Slots(ctx context.Context) SlotsView
}

type catalogQueriesImpl struct {
	store CatalogReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewCatalogQueries(store CatalogReadStore, clk clock.Clock, loc *time.Location) CatalogQueries {
	return &catalogQueriesImpl{store: store, clock: clk, loc: loc}
}

func (q *catalogQueriesImpl) Services(ctx context.Context) Listing[ServiceView] {
	l := FetchOrFallback(ctx, "services", q.store.ListActiveServices, fallbackServices)
	for i := range l.Items {
		l.Items[i] = l.Items[i].withLabels()
	}
	return l
}

func (q *catalogQueriesImpl) Masters(ctx context.Context) Listing[PublicMasterView] {
	return FetchOrFallback(ctx, "masters", q.store.ListActiveMasters, fallbackMasters)
}

func (q *catalogQueriesImpl) Categories(ctx context.Context) Listing[CategoryView] {
	return FetchOrFallback(ctx, "categories", q.store.ListCategories, fallbackCategories)
}

func (q *catalogQueriesImpl) Reviews(ctx context.Context) Listing[ReviewView] {
	load := func(ctx context.Context) ([]ReviewView, error) {
		return q.store.ListPublishedReviews(ctx, PublicReviewsLimit)
	}
	return FetchOrFallback(ctx, "reviews", load, fallbackReviews)
}

func (q *catalogQueriesImpl) Promotions(ctx context.Context) Listing[PromotionView] {
	today := clock.StartOfDay(q.clock.Now(), q.loc)
	load := func(ctx context.Context) ([]PromotionView, error) {
		return q.store.ListCurrentPromotions(ctx, today)
	}
	return FetchOrFallback(ctx, "promotions", load, fallbackPromotions)
}

func (q *catalogQueriesImpl) Gallery(ctx context.Context) Listing[GalleryView] {
	return FetchOrFallback(ctx, "gallery", q.store.ListVisibleGallery, fallbackGallery)
}

// ServiceByID looks the service up in the same listing the booking form shows,
// so a selection made from the fallback dataset resolves as well.
func (q *catalogQueriesImpl) ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, Source, error) {
	l := q.Services(ctx)
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i], l.Source, nil
		}
	}
	return nil, l.Source, ErrServiceNotFound
}

func (q *catalogQueriesImpl) MasterByID(ctx context.Context, id uuid.UUID) (*PublicMasterView, Source, error) {
	l := q.Masters(ctx)
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i], l.Source, nil
		}
	}
	return nil, l.Source, ErrMasterNotFound
}

func (q *catalogQueriesImpl) Slots(_ context.Context) SlotsView {
	times := make([]string, len(booking.TimeSlots))
	copy(times, booking.TimeSlots)
	return SlotsView{
		Dates: booking.DateOptions(q.clock.Now().In(q.loc), DateOptionDays),
		Times: times,
	}
}

func (s ServiceView) withLabels() ServiceView {
	s.PriceLabel = catalog.PriceLabel(s.Price)
	s.DurationLabel = catalog.DurationLabel(s.DurationMin)
	return s
}
