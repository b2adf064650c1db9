package repository

import (
	"context"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (
			id, user_id, service_id, master_id, client_name, client_phone, client_email,
			comment, starts_at, duration_min, price, total_price, status, promo_code, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		b.ID(), b.UserID(), b.ServiceID(), b.MasterID(),
		b.ClientName().String(), b.ClientPhone().String(), pgconv.NullableText(b.ClientEmail().String()),
		pgconv.NullableText(b.Comment()), b.StartsAt(), b.DurationMin(), b.Price(), b.TotalPrice(),
		b.Status().String(), pgconv.NullableText(b.PromoCode()), b.CreatedAt(),
	)
	return wrapErr("failed to create booking", err)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return wrapErr("failed to update booking status", err)
	}
	return requireAffected(tag, "booking not found")
}

func (r *BookingRepository) Reschedule(ctx context.Context, id uuid.UUID, masterID *uuid.UUID, startsAt time.Time, comment string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET master_id = $2, starts_at = $3, comment = $4, updated_at = now()
		WHERE id = $1`,
		id, masterID, startsAt, pgconv.NullableText(comment))
	if err != nil {
		return wrapErr("failed to reschedule booking", err)
	}
	return requireAffected(tag, "booking not found")
}

func (r *BookingRepository) MarkReviewed(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET reviewed = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to mark booking reviewed", err)
	}
	return requireAffected(tag, "booking not found")
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete booking", err)
	}
	return requireAffected(tag, "booking not found")
}
