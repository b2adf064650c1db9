package repository

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"

	"github.com/google/uuid"
)

type CategoryRepository struct {
	db db.DBTX
}

func NewCategoryRepository(dbtx db.DBTX) *CategoryRepository {
	return &CategoryRepository{db: dbtx}
}

func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, sort_order) VALUES ($1, $2, $3)`,
		c.ID(), c.Name(), c.SortOrder())
	return wrapErr("failed to create category", err)
}

func (r *CategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $2, sort_order = $3 WHERE id = $1`,
		c.ID(), c.Name(), c.SortOrder())
	if err != nil {
		return wrapErr("failed to update category", err)
	}
	return requireAffected(tag, "category not found")
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete category", err)
	}
	return requireAffected(tag, "category not found")
}
