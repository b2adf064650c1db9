package readstore

import (
	"context"
	"strings"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

// SnapshotReadStore answers the reads commands make inside a transaction.
type SnapshotReadStore struct {
	db db.DBTX
}

func NewSnapshotReadStore(dbtx db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: dbtx}
}

func (r *SnapshotReadStore) BookingForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		s      shared.BookingSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, service_id, master_id, client_name, client_phone, COALESCE(client_email, ''),
		       status, reviewed, starts_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`, id,
	).Scan(&s.ID, &s.UserID, &s.ServiceID, &s.MasterID, &s.ClientName, &s.ClientPhone, &s.ClientEmail,
		&status, &s.Reviewed, &s.StartsAt)
	if err != nil {
		return nil, wrapErr("booking not found", err)
	}
	s.Status = booking.Status(status)
	return &s, nil
}

func (r *SnapshotReadStore) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.user(ctx, `WHERE id = $1`, id)
}

func (r *SnapshotReadStore) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.user(ctx, `WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *SnapshotReadStore) user(ctx context.Context, where string, arg any) (*shared.UserSnapshot, error) {
	var (
		s    shared.UserSnapshot
		role string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, email, COALESCE(phone, ''), name, role, password_hash, is_active
		FROM users `+where, arg,
	).Scan(&s.ID, &s.Email, &s.Phone, &s.Name, &role, &s.PasswordHash, &s.IsActive)
	if err != nil {
		return nil, wrapErr("user not found", err)
	}
	s.Role = user.Role(role)
	return &s, nil
}

func (r *SnapshotReadStore) PasswordResetForUpdate(ctx context.Context, tokenHash string) (*shared.PasswordResetSnapshot, error) {
	var s shared.PasswordResetSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT token_hash, user_id, expires_at, used_at
		FROM password_resets
		WHERE token_hash = $1
		FOR UPDATE`, tokenHash,
	).Scan(&s.TokenHash, &s.UserID, &s.ExpiresAt, &s.UsedAt)
	if err != nil {
		return nil, wrapErr("password reset not found", err)
	}
	return &s, nil
}
