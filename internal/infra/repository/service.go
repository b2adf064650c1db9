package repository

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO services (id, name, description, price, duration_min, category_id, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID(), s.Name(), pgconv.NullableText(s.Description()), s.Price(), s.DurationMin(),
		s.CategoryID(), s.IsActive(), s.SortOrder(),
	)
	return wrapErr("failed to create service", err)
}

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE services
		SET name = $2, description = $3, price = $4, duration_min = $5,
		    category_id = $6, is_active = $7, sort_order = $8, updated_at = now()
		WHERE id = $1`,
		s.ID(), s.Name(), pgconv.NullableText(s.Description()), s.Price(), s.DurationMin(),
		s.CategoryID(), s.IsActive(), s.SortOrder(),
	)
	if err != nil {
		return wrapErr("failed to update service", err)
	}
	return requireAffected(tag, "service not found")
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete service", err)
	}
	return requireAffected(tag, "service not found")
}
