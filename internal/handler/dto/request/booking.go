package request

import (
	"strings"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/wizard"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidMasterChoice = errs.NewValidation(`master_id must be a master id or "any"`)

type SelectServiceRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
}

// SelectMasterRequest takes a master id or "any" for whoever is free.
type SelectMasterRequest struct {
	MasterID string `json:"master_id" binding:"required"`
}

func (r *SelectMasterRequest) ToMasterID() (*uuid.UUID, error) {
	choice := strings.TrimSpace(r.MasterID)
	if strings.EqualFold(choice, wizard.AnyMaster) {
		return nil, nil
	}
	id, err := uuid.Parse(choice)
	if err != nil {
		return nil, ErrInvalidMasterChoice
	}
	return &id, nil
}

// SelectDateRequest carries a label from the offered list, e.g. "12 мая".
type SelectDateRequest struct {
	Date string `json:"date" binding:"required,max=32"`
}

// SelectTimeRequest carries a slot label, e.g. "14:30".
type SelectTimeRequest struct {
	Time string `json:"time" binding:"required,max=5"`
}

type ContactRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Phone         string `json:"phone" binding:"required,phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Comment       string `json:"comment" binding:"max=1000"`
	CreateAccount bool   `json:"create_account"`
}

func (r *ContactRequest) ToDomain() wizard.Contact {
	return wizard.Contact{
		Name:          strings.TrimSpace(r.Name),
		Phone:         strings.TrimSpace(r.Phone),
		Email:         strings.TrimSpace(r.Email),
		Comment:       strings.TrimSpace(r.Comment),
		CreateAccount: r.CreateAccount,
	}
}

type PromoRequest struct {
	Code string `json:"code" binding:"required,max=50"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

func (r *ChangeStatusRequest) ToDomain() (booking.Status, error) {
	return booking.NewStatus(r.Status)
}
