package repository

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/review"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, booking_id, master_id, service_id, client_name, rating, comment, is_published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rev.ID(), rev.BookingID(), rev.MasterID(), rev.ServiceID(), rev.ClientName().String(),
		rev.Rating().Value(), rev.Comment().String(), rev.IsPublished(), rev.CreatedAt(),
	)
	return wrapErr("failed to create review", err)
}

func (r *ReviewRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE reviews SET is_published = $2 WHERE id = $1`, id, published)
	if err != nil {
		return wrapErr("failed to update review", err)
	}
	return requireAffected(tag, "review not found")
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete review", err)
	}
	return requireAffected(tag, "review not found")
}
