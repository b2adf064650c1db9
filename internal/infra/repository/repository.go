package repository

import (
	"log/slog"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

func wrapErr(msg string, err error) error {
	return infra.ClassifyPgErr(slog.Default(), msg, err)
}

// requireAffected turns an UPDATE or DELETE that matched nothing into a not-found error.
func requireAffected(tag pgconn.CommandTag, msg string) error {
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
	}
	return nil
}
