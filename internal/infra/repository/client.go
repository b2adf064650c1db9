package repository

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/client"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ClientRepository struct {
	db db.DBTX
}

func NewClientRepository(dbtx db.DBTX) *ClientRepository {
	return &ClientRepository{db: dbtx}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO clients (id, name, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID(), c.Name().String(), c.Phone().String(), pgconv.NullableText(c.Email().String()), c.CreatedAt(),
	)
	return wrapErr("failed to create client", err)
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE clients SET name = $2, phone = $3, email = $4, updated_at = now()
		WHERE id = $1`,
		c.ID(), c.Name().String(), c.Phone().String(), pgconv.NullableText(c.Email().String()),
	)
	if err != nil {
		return wrapErr("failed to update client", err)
	}
	return requireAffected(tag, "client not found")
}

// UpsertByPhone keeps one card per phone number; a blank email never erases a stored one.
func (r *ClientRepository) UpsertByPhone(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO clients (id, name, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (phone) DO UPDATE
		SET name = EXCLUDED.name,
		    email = COALESCE(EXCLUDED.email, clients.email),
		    updated_at = now()`,
		c.ID(), c.Name().String(), c.Phone().String(), pgconv.NullableText(c.Email().String()), c.CreatedAt(),
	)
	return wrapErr("failed to upsert client", err)
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return wrapErr("failed to delete client", err)
	}
	return requireAffected(tag, "client not found")
}
