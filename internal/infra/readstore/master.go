package readstore

import (
	"context"
	"strings"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type MasterReadStore struct {
	db db.DBTX
}

func NewMasterReadStore(dbtx db.DBTX) *MasterReadStore {
	return &MasterReadStore{db: dbtx}
}

func (r *MasterReadStore) FindByUserLink(ctx context.Context, userID uuid.UUID) (*queries.MasterView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+masterColumns+` `+masterFrom+`
		JOIN master_users mu ON mu.master_id = m.id
		WHERE mu.user_id = $1`, userID)
	return collectOne(rows, err, scanMaster, "master link not found")
}

func (r *MasterReadStore) FindByEmail(ctx context.Context, email string) (*queries.MasterView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+masterColumns+` `+masterFrom+`
		WHERE lower(m.email) = $1
		ORDER BY m.is_active DESC, m.sort_order
		LIMIT 1`, strings.ToLower(strings.TrimSpace(email)))
	return collectOne(rows, err, scanMaster, "master not found by email")
}
