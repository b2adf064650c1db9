package request

import (
	"strings"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/patch"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.NewValidation("dates must use the YYYY-MM-DD format")

type ServiceRequest struct {
	Name        string     `json:"name" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Price       int64      `json:"price" binding:"min=0"`
	DurationMin int        `json:"duration_min" binding:"required,min=1,max=1440"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Active      bool       `json:"active"`
	SortOrder   int        `json:"sort_order"`
}

func (r *ServiceRequest) ToInput() (commands.ServiceInput, error) {
	var in commands.ServiceInput
	err := copier.Copy(&in, r)
	return in, err
}

type MasterRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Specialization string `json:"specialization" binding:"max=200"`
	Bio            string `json:"bio" binding:"max=2000"`
	PhotoURL       string `json:"photo_url" binding:"omitempty,url"`
	Phone          string `json:"phone" binding:"omitempty,phone"`
	Email          string `json:"email" binding:"omitempty,email"`
	Active         bool   `json:"active"`
	SortOrder      int    `json:"sort_order"`
}

func (r *MasterRequest) ToInput() (commands.MasterInput, error) {
	var in commands.MasterInput
	err := copier.Copy(&in, r)
	return in, err
}

type LinkMasterUserRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

type CategoryRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	SortOrder int    `json:"sort_order"`
}

func (r *CategoryRequest) ToInput() (commands.CategoryInput, error) {
	var in commands.CategoryInput
	err := copier.Copy(&in, r)
	return in, err
}

type GalleryRequest struct {
	ImageURL    string `json:"image_url" binding:"required,url"`
	Description string `json:"description" binding:"max=500"`
	Visible     bool   `json:"visible"`
	SortOrder   int    `json:"sort_order"`
}

func (r *GalleryRequest) ToInput() (commands.GalleryInput, error) {
	var in commands.GalleryInput
	err := copier.Copy(&in, r)
	return in, err
}

// PromotionRequest takes calendar dates; both ends of the period are inclusive.
type PromotionRequest struct {
	Name            string   `json:"name" binding:"required,max=200"`
	Description     string   `json:"description" binding:"max=2000"`
	Code            string   `json:"code" binding:"required,max=50"`
	DiscountPercent *float64 `json:"discount_percent" binding:"omitempty,gt=0,lte=100"`
	DiscountAmount  *int64   `json:"discount_amount" binding:"omitempty,gt=0"`
	StartDate       string   `json:"start_date" copier:"-"`
	EndDate         string   `json:"end_date" copier:"-"`
	Active          bool     `json:"active"`
}

func (r *PromotionRequest) ToInput(loc *time.Location) (commands.PromotionInput, error) {
	var in commands.PromotionInput
	if err := copier.Copy(&in, r); err != nil {
		return in, err
	}
	var err error
	if in.StartDate, err = parseDate(r.StartDate, loc); err != nil {
		return in, err
	}
	if in.EndDate, err = parseDate(r.EndDate, loc); err != nil {
		return in, err
	}
	return in, nil
}

func parseDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

type ClientRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"required,phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

func (r *ClientRequest) ToInput() (commands.ClientInput, error) {
	var in commands.ClientInput
	err := copier.Copy(&in, r)
	return in, err
}

type BlacklistRequest struct {
	Phone  string `json:"phone" binding:"required,phone"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r *BlacklistRequest) ToInput() (commands.BlacklistInput, error) {
	var in commands.BlacklistInput
	err := copier.Copy(&in, r)
	return in, err
}

// BookingPatchRequest changes only the fields that are present.
type BookingPatchRequest struct {
	MasterID *uuid.UUID `json:"master_id"`
	Date     *string    `json:"date" binding:"omitempty,max=32"`
	Time     *string    `json:"time" binding:"omitempty,max=5"`
	Year     *int       `json:"year" binding:"omitempty,min=2000,max=2100"`
	Comment  *string    `json:"comment" binding:"omitempty,max=1000"`
}

func (r *BookingPatchRequest) ToInput(existing *queries.BookingView) commands.BookingUpdateInput {
	return commands.BookingUpdateInput{
		MasterID:  patch.CoalescePtr(r.MasterID, existing.MasterID),
		DateLabel: patch.Coalesce(r.Date, existing.DateLabel),
		TimeLabel: patch.Coalesce(r.Time, existing.TimeLabel),
		Year:      patch.Coalesce(r.Year, 0),
		Comment:   patch.Coalesce(r.Comment, existing.Comment),
	}
}
