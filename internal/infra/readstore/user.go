package readstore

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, role, name, COALESCE(phone, ''), is_active
		FROM users WHERE id = $1`, id)
	return collectOne(rows, err, func(row rowScanner) (queries.AuthorizedUserView, error) {
		var v queries.AuthorizedUserView
		err := row.Scan(&v.ID, &v.Email, &v.Role, &v.Name, &v.Phone, &v.IsActive)
		return v, err
	}, "user not found")
}
