package readstore

import (
	"context"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
)

// AdminReadStore backs the admin tables: every filter, count and page bound runs in SQL.
type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(dbtx db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: dbtx}
}

func (r *AdminReadStore) Bookings(ctx context.Context, lf queries.ListFilter) ([]queries.BookingView, int, error) {
	f := &filter{}
	f.search(lf.Search, "b.client_name", "b.client_phone", "b.client_email", "s.name", "m.name", "b.promo_code")
	if lf.Status != "" {
		f.add("b.status = ?", lf.Status)
	}
	f.flag("b.reviewed", lf.Flag)
	q := listQuery{name: "bookings", columns: bookingColumns, from: bookingFrom, orderBy: "b.starts_at DESC, b.id"}
	return page(ctx, r.db, q, f, lf, scanBooking)
}

func (r *AdminReadStore) Clients(ctx context.Context, lf queries.ListFilter) ([]queries.ClientView, int, error) {
	f := &filter{}
	f.search(lf.Search, "cl.name", "cl.phone", "cl.email")
	q := listQuery{name: "clients", columns: clientColumns, from: clientFrom, orderBy: "cl.created_at DESC, cl.id"}
	return page(ctx, r.db, q, f, lf, scanClient)
}

func (r *AdminReadStore) Masters(ctx context.Context, lf queries.ListFilter) ([]queries.MasterView, int, error) {
	f := &filter{}
	f.search(lf.Search, "m.name", "m.specialization", "m.phone", "m.email")
	f.flag("m.is_active", lf.Flag)
	q := listQuery{name: "masters", columns: masterColumns, from: masterFrom, orderBy: "m.sort_order, m.name"}
	return page(ctx, r.db, q, f, lf, scanMaster)
}

func (r *AdminReadStore) Services(ctx context.Context, lf queries.ListFilter) ([]queries.ServiceView, int, error) {
	f := &filter{}
	f.search(lf.Search, "s.name", "s.description", "c.name")
	f.flag("s.is_active", lf.Flag)
	q := listQuery{name: "services", columns: serviceColumns, from: serviceFrom, orderBy: "s.sort_order, s.name"}
	return page(ctx, r.db, q, f, lf, scanService)
}

func (r *AdminReadStore) Categories(ctx context.Context, lf queries.ListFilter) ([]queries.CategoryView, int, error) {
	f := &filter{}
	f.search(lf.Search, "c.name")
	q := listQuery{name: "categories", columns: categoryColumns, from: categoryFrom, orderBy: "c.sort_order, c.name"}
	return page(ctx, r.db, q, f, lf, scanCategory)
}

func (r *AdminReadStore) Promotions(ctx context.Context, lf queries.ListFilter) ([]queries.PromotionView, int, error) {
	f := &filter{}
	f.search(lf.Search, "p.name", "p.code", "p.description")
	f.flag("p.is_active", lf.Flag)
	q := listQuery{name: "promotions", columns: promotionColumns, from: promotionFrom, orderBy: "p.created_at DESC, p.id"}
	return page(ctx, r.db, q, f, lf, scanPromotion)
}

func (r *AdminReadStore) Reviews(ctx context.Context, lf queries.ListFilter) ([]queries.ReviewView, int, error) {
	f := &filter{}
	f.search(lf.Search, "r.client_name", "r.comment", "m.name", "s.name")
	f.flag("r.is_published", lf.Flag)
	q := listQuery{name: "reviews", columns: reviewColumns, from: reviewFrom, orderBy: "r.created_at DESC, r.id"}
	return page(ctx, r.db, q, f, lf, scanReview)
}

func (r *AdminReadStore) Gallery(ctx context.Context, lf queries.ListFilter) ([]queries.GalleryView, int, error) {
	f := &filter{}
	f.search(lf.Search, "g.description", "g.image_url")
	f.flag("g.is_visible", lf.Flag)
	q := listQuery{name: "gallery", columns: galleryColumns, from: galleryFrom, orderBy: "g.sort_order, g.id"}
	return page(ctx, r.db, q, f, lf, scanGallery)
}

func (r *AdminReadStore) Blacklist(ctx context.Context, lf queries.ListFilter) ([]queries.BlacklistView, int, error) {
	f := &filter{}
	f.search(lf.Search, "bl.phone", "bl.reason")
	q := listQuery{name: "blacklist", columns: blacklistColumns, from: blacklistFrom, orderBy: "bl.created_at DESC, bl.id"}
	return page(ctx, r.db, q, f, lf, scanBlacklist)
}

// Summary counts the dashboard tiles. Revenue is the sum of completed visits since monthStart.
func (r *AdminReadStore) Summary(ctx context.Context, dayStart, monthStart time.Time) (*queries.AdminSummary, error) {
	var s queries.AdminSummary
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM bookings WHERE status = 'pending'),
			(SELECT count(*) FROM bookings WHERE starts_at >= $1 AND starts_at < $2 AND status <> 'cancelled'),
			(SELECT count(*) FROM clients),
			(SELECT COALESCE(sum(total_price), 0) FROM bookings WHERE status = 'completed' AND starts_at >= $3)`,
		dayStart, dayStart.AddDate(0, 0, 1), monthStart,
	).Scan(&s.PendingBookings, &s.TodayBookings, &s.Clients, &s.MonthRevenue)
	if err != nil {
		return nil, wrapErr("failed to load admin summary", err)
	}
	return &s, nil
}
