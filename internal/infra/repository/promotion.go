package repository

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PromotionRepository struct {
	db db.DBTX
}

func NewPromotionRepository(dbtx db.DBTX) *PromotionRepository {
	return &PromotionRepository{db: dbtx}
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	d := p.Discount()
	_, err := r.db.Exec(ctx, `
		INSERT INTO promotions (
			id, name, description, code, discount_percent, discount_amount,
			start_date, end_date, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID(), p.Name(), pgconv.NullableText(p.Description()), p.Code().String(),
		d.Percent(), d.Amount(), p.StartDate(), p.EndDate(), p.IsActive(), p.CreatedAt(),
	)
	return wrapErr("failed to create promotion", err)
}

func (r *PromotionRepository) Update(ctx context.Context, p *promotion.Promotion) error {
	d := p.Discount()
	tag, err := r.db.Exec(ctx, `
		UPDATE promotions
		SET name = $2, description = $3, code = $4, discount_percent = $5, discount_amount = $6,
		    start_date = $7, end_date = $8, is_active = $9
		WHERE id = $1`,
		p.ID(), p.Name(), pgconv.NullableText(p.Description()), p.Code().String(),
		d.Percent(), d.Amount(), p.StartDate(), p.EndDate(), p.IsActive(),
	)
	if err != nil {
		return wrapErr("failed to update promotion", err)
	}
	return requireAffected(tag, "promotion not found")
}

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete promotion", err)
	}
	return requireAffected(tag, "promotion not found")
}
