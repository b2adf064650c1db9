package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"

	"github.com/google/uuid"
)

const MaxCommentLength = 1000

type Booking struct {
	id          uuid.UUID
	userID      *uuid.UUID
	serviceID   uuid.UUID
	masterID    *uuid.UUID
	clientName  contact.Name
	clientPhone contact.Phone
	clientEmail contact.Email
	comment     string
	startsAt    time.Time
	durationMin int
	price       int64
	totalPrice  int64
	status      Status
	promoCode   string
	reviewed    bool
	createdAt   time.Time
}

// Params is everything the booking form collects; MasterID nil means "any master".
type Params struct {
	UserID      *uuid.UUID
	ServiceID   uuid.UUID
	MasterID    *uuid.UUID
	ClientName  string
	ClientPhone string
	ClientEmail string
	Comment     string
	StartsAt    time.Time
	DurationMin int
	Price       int64
	TotalPrice  int64
	PromoCode   string
}

func NewBooking(p Params, now time.Time) (*Booking, error) {
	if p.ServiceID == uuid.Nil {
		return nil, ErrServiceRequired
	}
	name, err := contact.NewName(p.ClientName)
	if err != nil {
		return nil, err
	}
	phone, err := contact.NewPhone(p.ClientPhone)
	if err != nil {
		return nil, err
	}
	email, err := contact.NewEmail(p.ClientEmail)
	if err != nil {
		return nil, err
	}
	comment := strings.TrimSpace(p.Comment)
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}
	if p.StartsAt.IsZero() {
		return nil, ErrStartRequired
	}
	if p.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if p.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if p.TotalPrice < 0 || p.TotalPrice > p.Price {
		return nil, ErrInvalidTotal
	}

	return &Booking{
		id:          uuid.New(),
		userID:      p.UserID,
		serviceID:   p.ServiceID,
		masterID:    p.MasterID,
		clientName:  name,
		clientPhone: phone,
		clientEmail: email,
		comment:     comment,
		startsAt:    p.StartsAt,
		durationMin: p.DurationMin,
		price:       p.Price,
		totalPrice:  p.TotalPrice,
		status:      StatusPending,
		promoCode:   strings.ToUpper(strings.TrimSpace(p.PromoCode)),
		createdAt:   now,
	}, nil
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() *uuid.UUID         { return b.userID }
func (b *Booking) ServiceID() uuid.UUID       { return b.serviceID }
func (b *Booking) MasterID() *uuid.UUID       { return b.masterID }
func (b *Booking) ClientName() contact.Name   { return b.clientName }
func (b *Booking) ClientPhone() contact.Phone { return b.clientPhone }
func (b *Booking) ClientEmail() contact.Email { return b.clientEmail }
func (b *Booking) Comment() string            { return b.comment }
func (b *Booking) StartsAt() time.Time        { return b.startsAt }
func (b *Booking) DurationMin() int           { return b.durationMin }
func (b *Booking) Price() int64               { return b.price }
func (b *Booking) TotalPrice() int64          { return b.totalPrice }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) PromoCode() string          { return b.promoCode }
func (b *Booking) Reviewed() bool             { return b.reviewed }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) EndsAt() time.Time          { return b.startsAt.Add(time.Duration(b.durationMin) * time.Minute) }

// ShortID is the booking number shown to the client.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}
