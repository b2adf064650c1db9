package catalog

import (
	"strings"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"

	"github.com/google/uuid"
)

type Master struct {
	id             uuid.UUID
	name           string
	specialization string
	bio            string
	photoURL       string
	phone          string
	email          string
	active         bool
	sortOrder      int
}

type MasterParams struct {
	Name           string
	Specialization string
	Bio            string
	PhotoURL       string
	Phone          string
	Email          string
	Active         bool
	SortOrder      int
}

func NewMaster(p MasterParams) (*Master, error) {
	return buildMaster(uuid.New(), p)
}

func UpdateMaster(id uuid.UUID, p MasterParams) (*Master, error) {
	return buildMaster(id, p)
}

func buildMaster(id uuid.UUID, p MasterParams) (*Master, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	var phone string
	if strings.TrimSpace(p.Phone) != "" {
		ph, err := contact.NewPhone(p.Phone)
		if err != nil {
			return nil, err
		}
		phone = ph.String()
	}
	email, err := contact.NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	return &Master{
		id:             id,
		name:           name,
		specialization: strings.TrimSpace(p.Specialization),
		bio:            strings.TrimSpace(p.Bio),
		photoURL:       strings.TrimSpace(p.PhotoURL),
		phone:          phone,
		email:          email.String(),
		active:         p.Active,
		sortOrder:      p.SortOrder,
	}, nil
}

func (m *Master) ID() uuid.UUID          { return m.id }
func (m *Master) Name() string           { return m.name }
func (m *Master) Specialization() string { return m.specialization }
func (m *Master) Bio() string            { return m.bio }
func (m *Master) PhotoURL() string       { return m.photoURL }
func (m *Master) Phone() string          { return m.phone }
func (m *Master) Email() string          { return m.email }
func (m *Master) IsActive() bool         { return m.active }
func (m *Master) SortOrder() int         { return m.sortOrder }
