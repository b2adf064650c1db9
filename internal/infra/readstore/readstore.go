package readstore

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/pgconv"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func wrapErr(msg string, err error) error {
	return infra.ClassifyPgErr(slog.Default(), msg, err)
}

// collect scans every row; an empty result is an empty slice, never nil.
func collect[T any](rows pgx.Rows, err error, scan func(rowScanner) (T, error), msg string) ([]T, error) {
	if err != nil {
		return nil, wrapErr(msg, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, wrapErr(msg, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func collectOne[T any](rows pgx.Rows, err error, scan func(rowScanner) (T, error), msg string) (*T, error) {
	if err != nil {
		return nil, wrapErr(msg, err)
	}
	item, err := pgx.CollectOneRow(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, wrapErr(msg, err)
	}
	return &item, nil
}

// filter accumulates WHERE conditions with positional arguments.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) add(cond string, arg any) {
	f.args = append(f.args, arg)
	f.conds = append(f.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(f.args))))
}

// search matches the term as a case-insensitive substring of any of the columns.
func (f *filter) search(term string, columns ...string) {
	if term == "" {
		return
	}
	f.args = append(f.args, pgconv.LikePattern(term))
	placeholder := "$" + strconv.Itoa(len(f.args))
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE " + placeholder
	}
	f.conds = append(f.conds, "("+strings.Join(parts, " OR ")+")")
}

func (f *filter) flag(column string, v *bool) {
	if v != nil {
		f.add(column+" = ?", *v)
	}
}

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// listQuery is an admin table read: a column list, a FROM clause with joins and an ordering.
type listQuery struct {
	name    string
	columns string
	from    string
	orderBy string
}

// page runs the count and the bounded select with the same filter.
// The limit is clamped here too, so no caller can read more than MaxPerPage rows.
func page[T any](ctx context.Context, dbtx db.DBTX, q listQuery, f *filter, lf queries.ListFilter, scan func(rowScanner) (T, error)) ([]T, int, error) {
	switch {
	case lf.Limit <= 0:
		lf.Limit = queries.DefaultPerPage
	case lf.Limit > queries.MaxPerPage:
		lf.Limit = queries.MaxPerPage
	}
	lf.Offset = max(lf.Offset, 0)

	var total int
	if err := dbtx.QueryRow(ctx, "SELECT count(*) "+q.from+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, wrapErr("failed to count "+q.name, err)
	}
	if total == 0 || lf.Offset >= total {
		return []T{}, total, nil
	}

	n := len(f.args)
	sql := fmt.Sprintf("SELECT %s %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		q.columns, q.from, f.where(), q.orderBy, n+1, n+2)
	args := append(slices.Clone(f.args), lf.Limit, lf.Offset)

	rows, err := dbtx.Query(ctx, sql, args...)
	items, err := collect(rows, err, scan, "failed to list "+q.name)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
