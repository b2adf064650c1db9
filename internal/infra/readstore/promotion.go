package readstore

import (
	"context"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"

	"github.com/google/uuid"
)

// PromotionReadStore resolves promo codes typed into the booking form.
type PromotionReadStore struct {
	db  db.DBTX
	loc *time.Location
}

func NewPromotionReadStore(dbtx db.DBTX, loc *time.Location) *PromotionReadStore {
	return &PromotionReadStore{db: dbtx, loc: loc}
}

// FindActiveByCode returns the active promotion for a normalized code. Period checks are left
// to the domain so an expired code reports "expired" rather than "not found".
func (r *PromotionReadStore) FindActiveByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	var (
		id         uuid.UUID
		p          promotion.Params
		start, end *time.Time
		createdAt  time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(description, ''), code, discount_percent, discount_amount,
		       start_date, end_date, is_active, created_at
		FROM promotions
		WHERE code = $1 AND is_active`, code,
	).Scan(&id, &p.Name, &p.Description, &p.Code, &p.DiscountPercent, &p.DiscountAmount,
		&start, &end, &p.Active, &createdAt)
	if err != nil {
		return nil, wrapErr("promotion not found", err)
	}

	p.StartDate = r.localDate(start)
	p.EndDate = r.localDate(end)
	return promotion.Reconstruct(id, p, createdAt), nil
}

// localDate moves a DATE column, read as UTC midnight, to midnight in the salon's zone.
func (r *PromotionReadStore) localDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	local := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, r.loc)
	return &local
}
