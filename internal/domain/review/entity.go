package review

import (
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"

	"github.com/google/uuid"
)

// Review is left by a client for a visit, or entered by an admin for the public page.
// Client reviews start unpublished and are published by an admin.
type Review struct {
	id         uuid.UUID
	bookingID  *uuid.UUID
	masterID   *uuid.UUID
	serviceID  *uuid.UUID
	clientName contact.Name
	rating     Rating
	comment    Comment
	published  bool
	createdAt  time.Time
}

type Params struct {
	BookingID  *uuid.UUID
	MasterID   *uuid.UUID
	ServiceID  *uuid.UUID
	ClientName string
	Rating     int
	Comment    string
	Published  bool
}

func NewReview(id uuid.UUID, p Params, now time.Time) (*Review, error) {
	rating, err := NewRating(p.Rating)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(p.Comment)
	if err != nil {
		return nil, err
	}

	name, err := contact.NewName(p.ClientName)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		bookingID:  p.BookingID,
		masterID:   p.MasterID,
		serviceID:  p.ServiceID,
		clientName: name,
		rating:     rating,
		comment:    comment,
		published:  p.Published,
		createdAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) BookingID() *uuid.UUID    { return r.bookingID }
func (r *Review) MasterID() *uuid.UUID     { return r.masterID }
func (r *Review) ServiceID() *uuid.UUID    { return r.serviceID }
func (r *Review) ClientName() contact.Name { return r.clientName }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) IsPublished() bool        { return r.published }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
