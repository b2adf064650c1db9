package request

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"github.com/google/uuid"
)

type LeaveReviewRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=1000"`
}

func (r *LeaveReviewRequest) ToCommand() commands.LeaveReviewRequest {
	return commands.LeaveReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

type AdminReviewRequest struct {
	MasterID   *uuid.UUID `json:"master_id"`
	ServiceID  *uuid.UUID `json:"service_id"`
	ClientName string     `json:"client_name" binding:"required,max=100"`
	Rating     int        `json:"rating" binding:"required,min=1,max=5"`
	Comment    string     `json:"comment" binding:"max=1000"`
	Published  bool       `json:"published"`
}

type PublishReviewRequest struct {
	Published *bool `json:"published" binding:"required"`
}
