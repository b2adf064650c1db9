package readstore

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
)

type BlacklistReadStore struct {
	db db.DBTX
}

func NewBlacklistReadStore(dbtx db.DBTX) *BlacklistReadStore {
	return &BlacklistReadStore{db: dbtx}
}

func (r *BlacklistReadStore) IsBlacklisted(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM blacklist WHERE phone = $1)`,
		contact.NormalizePhone(phone)).Scan(&exists)
	if err != nil {
		return false, wrapErr("failed to check blacklist", err)
	}
	return exists, nil
}
