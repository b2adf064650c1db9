//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is what the fixtures write through: the suite's pool or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultPassword is the password of every account created by CreateTestUser.
const DefaultPassword = "password123"

// Reference rows seeded by SeedReferenceData.
var (
	LashCategoryID  = uuid.MustParse("0b6f1f4e-4c55-4a47-9f38-1f6a2c1e0001")
	LaminationID    = uuid.MustParse("0b6f1f4e-4c55-4a47-9f38-1f6a2c1e0101")
	ExtensionID     = uuid.MustParse("0b6f1f4e-4c55-4a47-9f38-1f6a2c1e0102")
	MasterAnnaID    = uuid.MustParse("0b6f1f4e-4c55-4a47-9f38-1f6a2c1e0201")
	SummerPromoCode = "SUMMER2024"
	LaminationPrice = int64(2000)
	MasterAnnaEmail = "anna.master@example.com"
)

var (
	hashOnce      sync.Once
	defaultHashed string
)

func defaultHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		if err == nil {
			defaultHashed = h
		}
	})
	require.NotEmpty(t, defaultHashed, "failed to hash default password")
	return defaultHashed
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, name, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, defaultHash(t), role, "Тестовый пользователь", "+79161234567")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// LinkMasterUser attaches an account to a master profile.
func LinkMasterUser(t *testing.T, db DBLike, masterID, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO master_users (master_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING", masterID, userID)
	require.NoError(t, err)
}

// CreateCompletedBooking stores a finished lamination visit for the given account.
func CreateCompletedBooking(t *testing.T, db DBLike, userID uuid.UUID, startsAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings
		(id, user_id, service_id, master_id, client_name, client_phone, starts_at, duration_min, price, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 90, $8, $8, 'completed')`,
		id, userID, LaminationID, MasterAnnaID, "Анна Смирнова", "+79161234567", startsAt, LaminationPrice)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name, sort_order) VALUES ($1, 'Ресницы', 1)
		ON CONFLICT (name) DO NOTHING;
	`, LashCategoryID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO services (id, name, description, price, duration_min, category_id, sort_order) VALUES
		    ($1, 'Ламинирование ресниц', 'Ламинирование и окрашивание', $3, 90, $4, 1),
		    ($2, 'Наращивание ресниц', 'Классическое наращивание', 2500, 120, $4, 2)
		ON CONFLICT (id) DO NOTHING;
	`, LaminationID, ExtensionID, LaminationPrice, LashCategoryID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO masters (id, name, specialization, email, sort_order) VALUES
		    ($1, 'Анна', 'Лэшмейкер', $2, 1)
		ON CONFLICT (id) DO NOTHING;
	`, MasterAnnaID, MasterAnnaEmail)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO promotions (name, description, code, discount_percent) VALUES
		    ('Летняя акция', 'Скидка 15% на все услуги', $1, 15)
		ON CONFLICT (code) DO NOTHING;
	`, SummerPromoCode)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
