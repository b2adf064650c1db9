package commands

import (
	"context"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/client"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/wizard"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWizardSessionNotFound = errs.NewNotFound("booking session not found or expired")

// WizardStore keeps booking form sessions between requests.
type WizardStore interface {
	Load(ctx context.Context, id uuid.UUID) (*wizard.State, error)
	Save(ctx context.Context, s *wizard.State) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PromotionFinder looks up an active promotion by its normalized code.
type PromotionFinder interface {
	FindActiveByCode(ctx context.Context, code string) (*promotion.Promotion, error)
}

type BlacklistChecker interface {
	IsBlacklisted(ctx context.Context, phone string) (bool, error)
}

// BookingWriter inserts a booking outside of any transaction: a submit is a single statement.
type BookingWriter interface {
	Create(ctx context.Context, b *booking.Booking) error
}

type ClientWriter interface {
	UpsertByPhone(ctx context.Context, c *client.Client) error
}

// Notifier delivers a short text message to a phone number.
type Notifier interface {
	Send(ctx context.Context, to, body string) error
}

// CatalogCache drops cached public listings after an admin write.
type CatalogCache interface {
	Invalidate(ctx context.Context) error
}

// ReminderSource lists bookings whose visit starts in [from, to).
type ReminderSource interface {
	RemindersBetween(ctx context.Context, from, to time.Time) ([]ReminderTarget, error)
}

type ReminderTarget struct {
	BookingID   uuid.UUID
	ClientName  string
	ClientPhone string
	ServiceName string
	StartsAt    time.Time
	Status      booking.Status
}
