package blacklist

import (
	"strings"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"

	"github.com/google/uuid"
)

// Entry blocks online bookings from a phone number.
type Entry struct {
	id        uuid.UUID
	phone     contact.Phone
	reason    string
	createdAt time.Time
}

func NewEntry(phone, reason string, now time.Time) (*Entry, error) {
	p, err := contact.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	return &Entry{
		id:        uuid.New(),
		phone:     p,
		reason:    strings.TrimSpace(reason),
		createdAt: now,
	}, nil
}

func (e *Entry) ID() uuid.UUID        { return e.id }
func (e *Entry) Phone() contact.Phone { return e.phone }
func (e *Entry) Reason() string       { return e.reason }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
