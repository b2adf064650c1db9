//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errListed = errors.New("list query reached")

type recordedCall struct {
	sql  string
	args []any
}

// recordingDB answers every count with total and fails every list query after recording it.
type recordingDB struct {
	total int
	rows  []recordedCall
	lists []recordedCall
}

func (r *recordingDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (r *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.lists = append(r.lists, recordedCall{sql: sql, args: args})
	return nil, errListed
}

func (r *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r.rows = append(r.rows, recordedCall{sql: sql, args: args})
	return countRow(r.total)
}

type countRow int

func (c countRow) Scan(dest ...any) error {
	*dest[0].(*int) = int(c)
	return nil
}

func TestFilter(t *testing.T) {
	reviewed := true

	tests := []struct {
		name          string
		build         func(f *filter)
		expectedWhere string
		expectedArgs  []any
	}{
		{
			name:          "empty",
			build:         func(*filter) {},
			expectedWhere: "",
			expectedArgs:  nil,
		},
		{
			name: "search then status then flag",
			build: func(f *filter) {
				f.search(" Анна ", "b.client_name", "b.client_phone")
				f.add("b.status = ?", "pending")
				f.flag("b.reviewed", &reviewed)
			},
			expectedWhere: " WHERE (b.client_name ILIKE $1 OR b.client_phone ILIKE $1) AND b.status = $2 AND b.reviewed = $3",
			expectedArgs:  []any{"%Анна%", "pending", true},
		},
		{
			name: "status before search keeps numbering in argument order",
			build: func(f *filter) {
				f.add("b.status = ?", "confirmed")
				f.search("50%", "b.promo_code")
			},
			expectedWhere: " WHERE b.status = $1 AND (b.promo_code ILIKE $2)",
			expectedArgs:  []any{"confirmed", `%50\%%`},
		},
		{
			name: "blank search and nil flag add nothing",
			build: func(f *filter) {
				f.search("", "m.name")
				f.flag("m.is_active", nil)
			},
			expectedWhere: "",
			expectedArgs:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &filter{}
			tt.build(f)

			assert.Equal(t, tt.expectedWhere, f.where())
			assert.Equal(t, tt.expectedArgs, f.args)
		})
	}
}

func TestAdminBookingsPage(t *testing.T) {
	published := false

	t.Run("limit and offset follow the filter arguments", func(t *testing.T) {
		dbtx := &recordingDB{total: 120}
		store := NewAdminReadStore(dbtx)

		_, _, err := store.Bookings(context.Background(), queries.ListFilter{
			Search: "anna",
			Status: "pending",
			Flag:   &published,
			Limit:  queries.MaxPerPage,
			Offset: 50,
		})

		require.ErrorIs(t, err, errListed)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))

		require.Len(t, dbtx.rows, 1)
		assert.Contains(t, dbtx.rows[0].sql, "SELECT count(*) ")
		assert.Contains(t, dbtx.rows[0].sql, "b.promo_code ILIKE $1) AND b.status = $2 AND b.reviewed = $3")
		assert.Equal(t, []any{"%anna%", "pending", false}, dbtx.rows[0].args)

		require.Len(t, dbtx.lists, 1)
		assert.Contains(t, dbtx.lists[0].sql, "AND b.reviewed = $3 ORDER BY b.starts_at DESC, b.id LIMIT $4 OFFSET $5")
		assert.Equal(t, []any{"%anna%", "pending", false, queries.MaxPerPage, 50}, dbtx.lists[0].args)
	})

	t.Run("no filters start paging at the first placeholder", func(t *testing.T) {
		dbtx := &recordingDB{total: 3}
		store := NewAdminReadStore(dbtx)

		_, _, err := store.Clients(context.Background(), queries.ListFilter{Limit: 20})

		require.ErrorIs(t, err, errListed)
		require.Len(t, dbtx.lists, 1)
		assert.NotContains(t, dbtx.lists[0].sql, "WHERE")
		assert.Contains(t, dbtx.lists[0].sql, "LIMIT $1 OFFSET $2")
		assert.Equal(t, []any{20, 0}, dbtx.lists[0].args)
	})

	t.Run("limit is clamped to the admin page bounds", func(t *testing.T) {
		tests := []struct {
			limit    int
			expected int
		}{
			{limit: 10_000, expected: queries.MaxPerPage},
			{limit: 0, expected: queries.DefaultPerPage},
			{limit: -5, expected: queries.DefaultPerPage},
			{limit: 25, expected: 25},
		}
		for _, tt := range tests {
			dbtx := &recordingDB{total: 1000}
			_, _, err := NewAdminReadStore(dbtx).Reviews(context.Background(), queries.ListFilter{Limit: tt.limit, Offset: -1})

			require.ErrorIs(t, err, errListed)
			require.Len(t, dbtx.lists, 1)
			assert.Equal(t, []any{tt.expected, 0}, dbtx.lists[0].args, "limit %d", tt.limit)
		}
	})

	t.Run("offset past the total skips the list query", func(t *testing.T) {
		dbtx := &recordingDB{total: 40}
		store := NewAdminReadStore(dbtx)

		items, total, err := store.Bookings(context.Background(), queries.ListFilter{Limit: 50, Offset: 50})

		require.NoError(t, err)
		assert.Equal(t, 40, total)
		assert.Empty(t, items)
		assert.NotNil(t, items)
		assert.Empty(t, dbtx.lists)
	})
}
