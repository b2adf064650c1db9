//go:build unit || e2e

package builder

import (
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	UserID      *uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	MasterID    *uuid.UUID
	MasterName  string
	ClientName  string
	ClientPhone string
	ClientEmail string
	Comment     string
	StartsAt    time.Time
	DurationMin int
	Price       int64
	TotalPrice  int64
	Status      booking.Status
	PromoCode   string
	Reviewed    bool
	CreatedAt   time.Time
}

// NewBookingBuilder starts from a 2000 ₽ lash lamination with "any master".
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Ламинирование ресниц",
		ClientName:  "Анна Смирнова",
		ClientPhone: "+79161234567",
		ClientEmail: "anna@example.com",
		StartsAt:    time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC),
		DurationMin: 90,
		Price:       2000,
		TotalPrice:  2000,
		Status:      booking.StatusPending,
		CreatedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(booking.Params{
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		MasterID:    b.MasterID,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ClientEmail: b.ClientEmail,
		Comment:     b.Comment,
		StartsAt:    b.StartsAt,
		DurationMin: b.DurationMin,
		Price:       b.Price,
		TotalPrice:  b.TotalPrice,
		PromoCode:   b.PromoCode,
	}, b.CreatedAt)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		MasterID:    b.MasterID,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ClientEmail: b.ClientEmail,
		StartsAt:    b.StartsAt,
		Status:      b.Status,
		Reviewed:    b.Reviewed,
	}
}

func (b *BookingBuilder) BuildView() queries.BookingView {
	return queries.BookingView{
		ID:          b.ID,
		ShortID:     booking.ShortID(b.ID),
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		MasterID:    b.MasterID,
		MasterName:  b.MasterName,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ClientEmail: b.ClientEmail,
		Comment:     b.Comment,
		StartsAt:    b.StartsAt,
		DateLabel:   booking.DateLabel(b.StartsAt),
		TimeLabel:   booking.TimeLabel(b.StartsAt),
		DurationMin: b.DurationMin,
		Price:       b.Price,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
		PromoCode:   b.PromoCode,
		Reviewed:    b.Reviewed,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = &userID
	return b
}

func (b *BookingBuilder) WithMaster(masterID uuid.UUID, name string) *BookingBuilder {
	b.MasterID = &masterID
	b.MasterName = name
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.ClientPhone = phone
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.ClientEmail = email
	return b
}

func (b *BookingBuilder) WithStartsAt(t time.Time) *BookingBuilder {
	b.StartsAt = t
	return b
}

func (b *BookingBuilder) WithPrices(price, total int64) *BookingBuilder {
	b.Price = price
	b.TotalPrice = total
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsReviewed() *BookingBuilder {
	b.Reviewed = true
	return b
}
