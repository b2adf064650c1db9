package repository

import (
	"context"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"

	"github.com/google/uuid"
)

// PasswordResetRepository stores only the digest of a reset token.
type PasswordResetRepository struct {
	db db.DBTX
}

func NewPasswordResetRepository(dbtx db.DBTX) *PasswordResetRepository {
	return &PasswordResetRepository{db: dbtx}
}

func (r *PasswordResetRepository) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_resets (token_hash, user_id, expires_at)
		VALUES ($1, $2, $3)`,
		tokenHash, userID, expiresAt)
	return wrapErr("failed to create password reset", err)
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, tokenHash string, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE password_resets SET used_at = $2 WHERE token_hash = $1 AND used_at IS NULL`, tokenHash, at)
	if err != nil {
		return wrapErr("failed to mark password reset used", err)
	}
	return requireAffected(tag, "password reset not found")
}
