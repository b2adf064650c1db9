package repository

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MasterRepository struct {
	db db.DBTX
}

func NewMasterRepository(dbtx db.DBTX) *MasterRepository {
	return &MasterRepository{db: dbtx}
}

func (r *MasterRepository) Create(ctx context.Context, m *catalog.Master) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO masters (id, name, specialization, bio, photo_url, phone, email, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID(), m.Name(), pgconv.NullableText(m.Specialization()), pgconv.NullableText(m.Bio()),
		pgconv.NullableText(m.PhotoURL()), pgconv.NullableText(m.Phone()), pgconv.NullableText(m.Email()),
		m.IsActive(), m.SortOrder(),
	)
	return wrapErr("failed to create master", err)
}

func (r *MasterRepository) Update(ctx context.Context, m *catalog.Master) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE masters
		SET name = $2, specialization = $3, bio = $4, photo_url = $5, phone = $6,
		    email = $7, is_active = $8, sort_order = $9, updated_at = now()
		WHERE id = $1`,
		m.ID(), m.Name(), pgconv.NullableText(m.Specialization()), pgconv.NullableText(m.Bio()),
		pgconv.NullableText(m.PhotoURL()), pgconv.NullableText(m.Phone()), pgconv.NullableText(m.Email()),
		m.IsActive(), m.SortOrder(),
	)
	if err != nil {
		return wrapErr("failed to update master", err)
	}
	return requireAffected(tag, "master not found")
}

func (r *MasterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM masters WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete master", err)
	}
	return requireAffected(tag, "master not found")
}

// LinkUser attaches an account to a master profile. An account belongs to at most one master.
func (r *MasterRepository) LinkUser(ctx context.Context, masterID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO master_users (master_id, user_id) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET master_id = EXCLUDED.master_id`,
		masterID, userID)
	return wrapErr("failed to link master account", err)
}
