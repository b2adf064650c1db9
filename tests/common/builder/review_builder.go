//go:build unit || e2e

package builder

import (
	"time"

	domreview "github.com/whiteedeesign/khansart1-sub000/internal/domain/review"
	reqdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/request"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	BookingID   *uuid.UUID
	MasterID    *uuid.UUID
	MasterName  string
	ServiceID   *uuid.UUID
	ServiceName string
	ClientName  string
	Rating      int
	Comment     string
	Published   bool
	CreatedAt   time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	bookingID := uuid.New()
	masterID := uuid.New()
	serviceID := uuid.New()
	return &ReviewBuilder{
		BookingID:   &bookingID,
		MasterID:    &masterID,
		MasterName:  "Екатерина Иванова",
		ServiceID:   &serviceID,
		ServiceName: "Ламинирование ресниц",
		ClientName:  "Анна Смирнова",
		Rating:      5,
		Comment:     "Отличная работа!",
		CreatedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.params(), r.CreatedAt)
}

func (r *ReviewBuilder) params() domreview.Params {
	return domreview.Params{
		BookingID:  r.BookingID,
		MasterID:   r.MasterID,
		ServiceID:  r.ServiceID,
		ClientName: r.ClientName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Published:  r.Published,
	}
}

func (r *ReviewBuilder) BuildLeaveRequestDTO() reqdto.LeaveReviewRequest {
	var bookingID uuid.UUID
	if r.BookingID != nil {
		bookingID = *r.BookingID
	}
	return reqdto.LeaveReviewRequest{
		BookingID: bookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildAdminRequestDTO() reqdto.AdminReviewRequest {
	return reqdto.AdminReviewRequest{
		MasterID:   r.MasterID,
		ServiceID:  r.ServiceID,
		ClientName: r.ClientName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Published:  r.Published,
	}
}

func (r *ReviewBuilder) BuildView() queries.ReviewView {
	return queries.ReviewView{
		ID:          uuid.New(),
		BookingID:   r.BookingID,
		MasterID:    r.MasterID,
		MasterName:  r.MasterName,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		ClientName:  r.ClientName,
		Rating:      r.Rating,
		Comment:     r.Comment,
		Published:   r.Published,
		CreatedAt:   r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithBookingID(bookingID uuid.UUID) *ReviewBuilder {
	r.BookingID = &bookingID
	return r
}

func (r *ReviewBuilder) WithoutBooking() *ReviewBuilder {
	r.BookingID = nil
	return r
}

func (r *ReviewBuilder) WithClientName(name string) *ReviewBuilder {
	r.ClientName = name
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) AsPublished() *ReviewBuilder {
	r.Published = true
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Мастер опоздал"
	return r
}
