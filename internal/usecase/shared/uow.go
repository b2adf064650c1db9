package shared

import (
	"context"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/blacklist"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/client"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/review"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Clients() ClientRepository
	Users() UserRepository
	PasswordResets() PasswordResetRepository
	Services() ServiceRepository
	Masters() MasterRepository
	Categories() CategoryRepository
	Gallery() GalleryRepository
	Promotions() PromotionRepository
	Blacklist() BlacklistRepository
	Reads() CommandReads
}

// CommandReads are the reads a command needs inside its transaction. Booking and reset rows are locked.
type CommandReads interface {
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	PasswordResetForUpdate(ctx context.Context, tokenHash string) (*PasswordResetSnapshot, error)
}

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID          uuid.UUID
	UserID      *uuid.UUID
	ServiceID   uuid.UUID
	MasterID    *uuid.UUID
	ClientName  string
	ClientPhone string
	ClientEmail string
	Status      booking.Status
	Reviewed    bool
	StartsAt    time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Phone        string
	Name         string
	Role         user.Role
	PasswordHash string
	IsActive     bool
}

type PasswordResetSnapshot struct {
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
	UsedAt    *time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	Reschedule(ctx context.Context, id uuid.UUID, masterID *uuid.UUID, startsAt time.Time, comment string) error
	MarkReviewed(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, c *client.Client) error
	UpsertByPhone(ctx context.Context, c *client.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type PasswordResetRepository interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	MarkUsed(ctx context.Context, tokenHash string, at time.Time) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *catalog.Service) error
	Update(ctx context.Context, s *catalog.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MasterRepository interface {
	Create(ctx context.Context, m *catalog.Master) error
	Update(ctx context.Context, m *catalog.Master) error
	Delete(ctx context.Context, id uuid.UUID) error
	LinkUser(ctx context.Context, masterID, userID uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *catalog.Category) error
	Update(ctx context.Context, c *catalog.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GalleryRepository interface {
	Create(ctx context.Context, g *catalog.GalleryItem) error
	Update(ctx context.Context, g *catalog.GalleryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PromotionRepository interface {
	Create(ctx context.Context, p *promotion.Promotion) error
	Update(ctx context.Context, p *promotion.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BlacklistRepository interface {
	Create(ctx context.Context, e *blacklist.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
