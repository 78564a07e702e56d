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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference catalog seeded after every reset. IDs are fixed so tests can
// address them directly.
const (
	TrailRideServiceID   int64 = 1
	RideAndStayServiceID int64 = 2
	BungalowServiceID    int64 = 3
	BungalowPoolID             = "bungalow"
)

func CreateSlot(t *testing.T, db DBLike, date time.Time, timeOfDay string, capacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO riding_slots (date, time, capacity) VALUES ($1, $2, $3) RETURNING id",
		date, timeOfDay, capacity).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreatePool(t *testing.T, db DBLike, id string, capacity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO resource_pools (id, name, capacity) VALUES ($1, $1, $2) ON CONFLICT (id) DO UPDATE SET capacity = EXCLUDED.capacity",
		id, capacity)
	require.NoError(t, err)
}

// CreateService inserts an active service. poolID must be set exactly when
// mode is "pool".
func CreateService(t *testing.T, db DBLike, name, mode string, poolID *string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO services (name, price, capacity_mode, pool_id) VALUES ($1, 100, $2, $3) RETURNING id",
		name, mode, poolID).Scan(&id)
	require.NoError(t, err)
	return id
}

func SetServiceActive(t *testing.T, db DBLike, id int64, active bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE services SET active = $2 WHERE id = $1", id, active)
	require.NoError(t, err)
}

// CountReservations counts non-cancelled reservations on a date.
func CountReservations(t *testing.T, db DBLike, date time.Time) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE date = $1 AND status <> 'cancelled'", date).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountQueuedNotifications(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE status = 'queued'").Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the bungalow pool and the three default services.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO resource_pools (id, name, capacity) VALUES ('bungalow', 'Bungalov', 1)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO services (id, name, duration, price, capacity_mode, pool_id, active) VALUES
		    (1, 'Rekreativno jahanje', '1h', 50, 'slot', NULL, TRUE),
		    (2, 'Jahanje + Prenoćište', '1 dan', 150, 'pool', 'bungalow', TRUE),
		    (3, 'Prenoćište u bungalovu', '1 noć', 100, 'pool', 'bungalow', TRUE)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `SELECT setval('services_id_seq', (SELECT max(id) FROM services))`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except schema_migrations and reseeds the
// reference catalog.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
