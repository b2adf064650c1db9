package readstore

import (
	"context"
	"strings"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` `+bookingFrom+` WHERE b.id = $1`, id)
	return collectOne(rows, err, scanBooking, "booking not found")
}

func (r *BookingReadStore) FindForClient(ctx context.Context, userID uuid.UUID, email, phone string) ([]queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` `+bookingFrom+`
		WHERE b.user_id = $1
		   OR ($2 <> '' AND lower(b.client_email) = $2)
		   OR ($3 <> '' AND b.client_phone = $3)
		ORDER BY b.starts_at DESC`,
		userID, strings.ToLower(strings.TrimSpace(email)), contact.NormalizePhone(phone))
	return collect(rows, err, scanBooking, "failed to list client bookings")
}

func (r *BookingReadStore) FindForMaster(ctx context.Context, masterID uuid.UUID, from, to time.Time) ([]queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` `+bookingFrom+`
		WHERE (b.master_id = $1 OR b.master_id IS NULL)
		  AND b.starts_at >= $2 AND b.starts_at < $3
		ORDER BY b.starts_at`,
		masterID, from, to)
	return collect(rows, err, scanBooking, "failed to list master bookings")
}

// RemindersBetween lists pending and confirmed visits starting in [from, to).
func (r *BookingReadStore) RemindersBetween(ctx context.Context, from, to time.Time) ([]commands.ReminderTarget, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.client_name, b.client_phone, s.name, b.starts_at, b.status
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.status IN ('pending', 'confirmed')
		  AND b.starts_at >= $1 AND b.starts_at < $2
		ORDER BY b.starts_at`,
		from, to)
	return collect(rows, err, func(row rowScanner) (commands.ReminderTarget, error) {
		var (
			t      commands.ReminderTarget
			status string
		)
		err := row.Scan(&t.BookingID, &t.ClientName, &t.ClientPhone, &t.ServiceName, &t.StartsAt, &status)
		t.Status = booking.Status(status)
		return t, err
	}, "failed to list reminder targets")
}
