package wizard

import (
	"errors"
	"strings"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"

	"github.com/google/uuid"
)

var (
	ErrStepIncomplete = errors.New("current step is not complete")
	ErrCompleted      = errors.New("booking has already been submitted")
	ErrNotReady       = errors.New("booking details are incomplete")
)

type Step int

const (
	StepService Step = iota + 1
	StepMaster
	StepDateTime
	StepContact
	StepConfirm
)

// AnyMaster is the master choice meaning "whoever is free".
const AnyMaster = "any"

type Contact struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Comment       string `json:"comment"`
	CreateAccount bool   `json:"create_account"`
}

type AppliedPromo struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	DiscountAmount  *int64   `json:"discount_amount,omitempty"`
}

func (a AppliedPromo) Discount() promotion.Discount {
	d, err := promotion.NewDiscount(a.DiscountPercent, a.DiscountAmount)
	if err != nil {
		return promotion.NoDiscount()
	}
	return d
}

// State is one visitor's booking form. It is serialized as JSON into the session store,
// so every field is exported.
type State struct {
	ID           uuid.UUID     `json:"id"`
	Step         Step          `json:"step"`
	ServiceID    *uuid.UUID    `json:"service_id,omitempty"`
	CategoryID   *uuid.UUID    `json:"category_id,omitempty"`
	MasterChoice string        `json:"master_choice,omitempty"`
	DateLabel    string        `json:"date_label,omitempty"`
	TimeLabel    string        `json:"time_label,omitempty"`
	Contact      Contact       `json:"contact"`
	Promo        *AppliedPromo `json:"promo,omitempty"`
	BookingID    *uuid.UUID    `json:"booking_id,omitempty"`
	LastError    string        `json:"last_error,omitempty"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func New(now time.Time) *State {
	return &State{
		ID:        uuid.New(),
		Step:      StepService,
		UpdatedAt: now,
	}
}

func (s *State) IsCompleted() bool {
	return s.BookingID != nil
}

// CanAdvance reports whether the data required by the current step is present.
func (s *State) CanAdvance() bool {
	switch s.Step {
	case StepService:
		return s.ServiceID != nil
	case StepMaster:
		return s.MasterChoice != ""
	case StepDateTime:
		return s.DateLabel != "" && s.TimeLabel != ""
	case StepContact:
		return strings.TrimSpace(s.Contact.Name) != "" && strings.TrimSpace(s.Contact.Phone) != ""
	default:
		return false
	}
}

func (s *State) Next() error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	if !s.CanAdvance() {
		return ErrStepIncomplete
	}
	s.Step++
	return nil
}

func (s *State) Back() error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	if s.Step > StepService {
		s.Step--
	}
	return nil
}

func (s *State) SelectService(serviceID uuid.UUID, categoryID *uuid.UUID) error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	s.ServiceID = &serviceID
	s.CategoryID = categoryID
	return nil
}

// SelectMaster records the chosen master; nil means any master.
func (s *State) SelectMaster(masterID *uuid.UUID) error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	if masterID == nil {
		s.MasterChoice = AnyMaster
		return nil
	}
	s.MasterChoice = masterID.String()
	return nil
}

// MasterID returns nil both for "any master" and when nothing was chosen yet.
func (s *State) MasterID() *uuid.UUID {
	if s.MasterChoice == "" || s.MasterChoice == AnyMaster {
		return nil
	}
	id, err := uuid.Parse(s.MasterChoice)
	if err != nil {
		return nil
	}
	return &id
}

func (s *State) SelectDate(label string) error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	s.DateLabel = strings.TrimSpace(label)
	return nil
}

func (s *State) SelectTime(label string) error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	s.TimeLabel = strings.TrimSpace(label)
	return nil
}

func (s *State) SetContact(c Contact) error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	s.Contact = c
	return nil
}

// ApplyPromo attaches p when it is usable at now. On error the state is left as it was.
func (s *State) ApplyPromo(p *promotion.Promotion, now time.Time) error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	if p == nil {
		return promotion.ErrPromotionNotFound
	}
	if err := p.CheckUsable(now); err != nil {
		return err
	}
	s.Promo = &AppliedPromo{
		Code:            p.Code().String(),
		Name:            p.Name(),
		DiscountPercent: p.Discount().Percent(),
		DiscountAmount:  p.Discount().Amount(),
	}
	return nil
}

func (s *State) RemovePromo() error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	s.Promo = nil
	return nil
}

// Total is the amount to pay for a service priced at base.
func (s *State) Total(base int64) int64 {
	if s.Promo == nil {
		return base
	}
	return s.Promo.Discount().Apply(base)
}

func (s *State) PromoCode() string {
	if s.Promo == nil {
		return ""
	}
	return s.Promo.Code
}

// ReadyToSubmit checks every gate at once; a submit may come from a restored session.
// Only the confirmation step can submit.
func (s *State) ReadyToSubmit() error {
	if s.IsCompleted() {
		return ErrCompleted
	}
	if s.Step != StepConfirm {
		return ErrNotReady
	}
	if s.ServiceID == nil || s.MasterChoice == "" || s.DateLabel == "" || s.TimeLabel == "" ||
		strings.TrimSpace(s.Contact.Name) == "" || strings.TrimSpace(s.Contact.Phone) == "" {
		return ErrNotReady
	}
	return nil
}

func (s *State) Complete(bookingID uuid.UUID) {
	s.BookingID = &bookingID
	s.LastError = ""
	s.Step = StepConfirm
}

// Fail keeps the visitor on the confirmation step with the backend message.
func (s *State) Fail(err error) {
	s.LastError = err.Error()
	s.Step = StepConfirm
}

func (s *State) ShortID() string {
	if s.BookingID == nil {
		return ""
	}
	return booking.ShortID(*s.BookingID)
}

// Reset starts a new form in the same session.
func (s *State) Reset(now time.Time) {
	*s = State{ID: s.ID, Step: StepService, UpdatedAt: now}
}
