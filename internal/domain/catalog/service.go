package catalog

import (
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	id          uuid.UUID
	name        string
	description string
	price       int64
	durationMin int
	categoryID  *uuid.UUID
	active      bool
	sortOrder   int
}

type ServiceParams struct {
	Name        string
	Description string
	Price       int64
	DurationMin int
	CategoryID  *uuid.UUID
	Active      bool
	SortOrder   int
}

func NewService(p ServiceParams) (*Service, error) {
	return buildService(uuid.New(), p)
}

// UpdateService validates a full replacement of an existing service.
func UpdateService(id uuid.UUID, p ServiceParams) (*Service, error) {
	return buildService(id, p)
}

func buildService(id uuid.UUID, p ServiceParams) (*Service, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if p.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if p.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Service{
		id:          id,
		name:        name,
		description: strings.TrimSpace(p.Description),
		price:       p.Price,
		durationMin: p.DurationMin,
		categoryID:  p.CategoryID,
		active:      p.Active,
		sortOrder:   p.SortOrder,
	}, nil
}

func (s *Service) ID() uuid.UUID          { return s.id }
func (s *Service) Name() string           { return s.name }
func (s *Service) Description() string    { return s.description }
func (s *Service) Price() int64           { return s.price }
func (s *Service) DurationMin() int       { return s.durationMin }
func (s *Service) CategoryID() *uuid.UUID { return s.categoryID }
func (s *Service) IsActive() bool         { return s.active }
func (s *Service) SortOrder() int         { return s.sortOrder }
