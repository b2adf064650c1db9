package repository

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/blacklist"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlacklistRepository struct {
	db db.DBTX
}

func NewBlacklistRepository(dbtx db.DBTX) *BlacklistRepository {
	return &BlacklistRepository{db: dbtx}
}

func (r *BlacklistRepository) Create(ctx context.Context, e *blacklist.Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO blacklist (id, phone, reason, created_at) VALUES ($1, $2, $3, $4)`,
		e.ID(), e.Phone().String(), pgconv.NullableText(e.Reason()), e.CreatedAt())
	return wrapErr("failed to add phone to blacklist", err)
}

func (r *BlacklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blacklist WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to remove blacklist entry", err)
	}
	return requireAffected(tag, "blacklist entry not found")
}
