package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lib/pq"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
	"github.com/comitanigiacomo/strivefit-engine/migrations"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupTestDB(t *testing.T) *sqlx.DB {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "strivefit_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "strivefit_db"),
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}

	require.NoError(t, migrations.Up(dsn), "failed to migrate test database")
	return db
}

// testCollection isolates each test from data left behind by earlier runs.
func testCollection(name string) string {
	return fmt.Sprintf("test/%s/%s", uuid.NewString(), name)
}

func TestPostgresStore_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := NewPostgresStore(db, 0)
	ctx := context.Background()

	t.Run("Put, Get and version bump", func(t *testing.T) {
		col := testCollection("fitnessData")

		_, err := s.Get(ctx, col, "u1")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, s.Put(ctx, col, "u1", domain.Document{"weight": 80.0, "uid": "u1"}))
		require.NoError(t, s.Put(ctx, col, "u1", domain.Document{"weight": 79.5, "uid": "u1"}))

		rec, err := s.Get(ctx, col, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, rec.Version)
		assert.Equal(t, 79.5, rec.Data.Float("weight"))
	})

	t.Run("PutIfVersion", func(t *testing.T) {
		col := testCollection("goals")

		assert.ErrorIs(t, s.PutIfVersion(ctx, col, "g1", domain.Document{}, 1), domain.ErrNotFound)

		key, err := s.Append(ctx, col, domain.Document{"completed": false})
		require.NoError(t, err)

		require.NoError(t, s.PutIfVersion(ctx, col, key, domain.Document{"completed": true}, 1))
		assert.ErrorIs(t, s.PutIfVersion(ctx, col, key, domain.Document{"completed": false}, 1), domain.ErrConflict)

		rec, err := s.Get(ctx, col, key)
		require.NoError(t, err)
		assert.True(t, rec.Data.Bool("completed"))
	})

	t.Run("Merge keeps other keys", func(t *testing.T) {
		col := testCollection("attendance")

		require.NoError(t, s.Merge(ctx, col, "u1", domain.Document{"2024-03-05": "Present"}))
		require.NoError(t, s.Merge(ctx, col, "u1", domain.Document{"2024-03-06": "Absent"}))

		rec, err := s.Get(ctx, col, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.Document{"2024-03-05": "Present", "2024-03-06": "Absent"}, rec.Data)
	})

	t.Run("QueryOrdered by numeric field with stable ties", func(t *testing.T) {
		col := testCollection("progressHistory")

		for _, e := range []struct {
			name string
			date int64
		}{{"late", 300}, {"tieA", 200}, {"early", 100}, {"tieB", 200}} {
			_, err := s.Append(ctx, col, domain.Document{"name": e.name, "date": e.date})
			require.NoError(t, err)
		}

		recs, err := s.QueryOrdered(ctx, col, "date", domain.SortAsc)
		require.NoError(t, err)

		names := make([]string, 0, len(recs))
		for _, r := range recs {
			names = append(names, r.Data.String("name"))
		}
		assert.Equal(t, []string{"early", "tieA", "tieB", "late"}, names)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		col := testCollection("goals")

		key, err := s.Append(ctx, col, domain.Document{"goalName": "Run"})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, col, key))
		require.NoError(t, s.Delete(ctx, col, key))

		recs, err := s.QueryOrdered(ctx, col, "", domain.SortAsc)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}

func TestMapPGError(t *testing.T) {
	assert.ErrorIs(t, mapPGError("put x", assert.AnError), domain.ErrStore)

	err := mapPGError("append x", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}))
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrStore)

	assert.ErrorIs(t, mapPGError("append x", &pq.Error{Code: "23505"}), domain.ErrConflict)
	assert.ErrorIs(t, mapPGError("append x", &pq.Error{Code: "57014"}), domain.ErrStore)
}
