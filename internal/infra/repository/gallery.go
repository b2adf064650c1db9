package repository

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GalleryRepository struct {
	db db.DBTX
}

func NewGalleryRepository(dbtx db.DBTX) *GalleryRepository {
	return &GalleryRepository{db: dbtx}
}

func (r *GalleryRepository) Create(ctx context.Context, g *catalog.GalleryItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO gallery (id, image_url, description, is_visible, sort_order)
		VALUES ($1, $2, $3, $4, $5)`,
		g.ID(), g.ImageURL(), pgconv.NullableText(g.Description()), g.IsVisible(), g.SortOrder())
	return wrapErr("failed to create gallery item", err)
}

func (r *GalleryRepository) Update(ctx context.Context, g *catalog.GalleryItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE gallery SET image_url = $2, description = $3, is_visible = $4, sort_order = $5
		WHERE id = $1`,
		g.ID(), g.ImageURL(), pgconv.NullableText(g.Description()), g.IsVisible(), g.SortOrder())
	if err != nil {
		return wrapErr("failed to update gallery item", err)
	}
	return requireAffected(tag, "gallery item not found")
}

func (r *GalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete gallery item", err)
	}
	return requireAffected(tag, "gallery item not found")
}
