package readstore

import (
	"context"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
)

// CatalogReadStore serves the public listings.
type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (r *CatalogReadStore) ListActiveServices(ctx context.Context) ([]queries.ServiceView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+serviceColumns+` `+serviceFrom+`
		WHERE s.is_active
		ORDER BY s.sort_order, s.name`)
	return collect(rows, err, scanService, "failed to list services")
}

func (r *CatalogReadStore) ListActiveMasters(ctx context.Context) ([]queries.PublicMasterView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+publicMasterColumns+` `+masterFrom+`
		WHERE m.is_active
		ORDER BY m.sort_order, m.name`)
	return collect(rows, err, scanPublicMaster, "failed to list masters")
}

func (r *CatalogReadStore) ListCategories(ctx context.Context) ([]queries.CategoryView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` `+categoryFrom+` ORDER BY c.sort_order, c.name`)
	return collect(rows, err, scanCategory, "failed to list categories")
}

func (r *CatalogReadStore) ListPublishedReviews(ctx context.Context, limit int) ([]queries.ReviewView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+` `+reviewFrom+`
		WHERE r.is_published
		ORDER BY r.created_at DESC
		LIMIT $1`, limit)
	return collect(rows, err, scanReview, "failed to list reviews")
}

// ListCurrentPromotions returns active promotions whose period covers today; both bounds are inclusive.
func (r *CatalogReadStore) ListCurrentPromotions(ctx context.Context, today time.Time) ([]queries.PromotionView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+promotionColumns+` `+promotionFrom+`
		WHERE p.is_active
		  AND (p.start_date IS NULL OR p.start_date <= $1::date)
		  AND (p.end_date IS NULL OR p.end_date >= $1::date)
		ORDER BY p.created_at DESC`, today)
	return collect(rows, err, scanPromotion, "failed to list promotions")
}

func (r *CatalogReadStore) ListVisibleGallery(ctx context.Context) ([]queries.GalleryView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+galleryColumns+` `+galleryFrom+`
		WHERE g.is_visible
		ORDER BY g.sort_order, g.id`)
	return collect(rows, err, scanGallery, "failed to list gallery")
}
