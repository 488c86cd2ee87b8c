package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
)

var _ domain.RecordStore = (*PostgresStore)(nil)

const (
	pgUniqueViolation = "23505"
	defaultPGTimeout  = 3 * time.Second
)

// PostgresStore keeps every collection in a single JSONB "documents" table
// (see migrations/).
type PostgresStore struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewPostgresStore(db *sqlx.DB, timeout time.Duration) *PostgresStore {
	if timeout <= 0 {
		timeout = defaultPGTimeout
	}
	return &PostgresStore{db: db, timeout: timeout}
}

type documentRow struct {
	Key     string `db:"doc_key"`
	Version int    `db:"version"`
	Doc     []byte `db:"doc"`
}

func (r documentRow) toRecord() (*domain.Record, error) {
	doc := domain.Document{}
	if len(r.Doc) > 0 {
		if err := json.Unmarshal(r.Doc, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document %s: %w", r.Key, err)
		}
	}
	return &domain.Record{Key: r.Key, Version: r.Version, Data: doc}, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, key string) (*domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var row documentRow
	query := `SELECT doc_key, version, doc FROM documents WHERE collection = $1 AND doc_key = $2`

	if err := s.db.GetContext(ctx, &row, query, collection, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StoreFailure("get "+collection, err)
	}

	rec, err := row.toRecord()
	if err != nil {
		return nil, domain.StoreFailure("get "+collection, err)
	}
	return rec, nil
}

func (s *PostgresStore) Put(ctx context.Context, collection, key string, doc domain.Document) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := json.Marshal(doc)
	if err != nil {
		return domain.StoreFailure("put "+collection, err)
	}

	query := `
		INSERT INTO documents (collection, doc_key, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, doc_key) DO UPDATE
		SET doc = EXCLUDED.doc,
		    version = documents.version + 1,
		    updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, collection, key, string(payload)); err != nil {
		return mapPGError("put "+collection, err)
	}
	return nil
}

func (s *PostgresStore) PutIfVersion(ctx context.Context, collection, key string, doc domain.Document, version int) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := json.Marshal(doc)
	if err != nil {
		return domain.StoreFailure("put "+collection, err)
	}

	query := `
		UPDATE documents
		SET doc = $3,
		    version = version + 1,
		    updated_at = now()
		WHERE collection = $1
		  AND doc_key = $2
		  AND version = $4`

	result, err := s.db.ExecContext(ctx, query, collection, key, string(payload), version)
	if err != nil {
		return mapPGError("put "+collection, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return domain.StoreFailure("put "+collection, err)
	}

	if rows == 0 {
		exists, err := s.exists(ctx, collection, key)
		if err != nil {
			return domain.StoreFailure("put "+collection, err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}

	return nil
}

// Merge relies on jsonb "||", which replaces top-level keys only.
func (s *PostgresStore) Merge(ctx context.Context, collection, key string, partial domain.Document) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := json.Marshal(partial)
	if err != nil {
		return domain.StoreFailure("merge "+collection, err)
	}

	query := `
		INSERT INTO documents (collection, doc_key, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, doc_key) DO UPDATE
		SET doc = documents.doc || EXCLUDED.doc,
		    version = documents.version + 1,
		    updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, collection, key, string(payload)); err != nil {
		return mapPGError("merge "+collection, err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, collection string, doc domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", domain.StoreFailure("append "+collection, err)
	}

	key := uuid.NewString()
	query := `INSERT INTO documents (collection, doc_key, doc) VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, collection, key, string(payload)); err != nil {
		return "", mapPGError("append "+collection, err)
	}
	return key, nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := `DELETE FROM documents WHERE collection = $1 AND doc_key = $2`

	if _, err := s.db.ExecContext(ctx, query, collection, key); err != nil {
		return mapPGError("delete "+collection, err)
	}
	return nil
}

func (s *PostgresStore) QueryOrdered(ctx context.Context, collection, orderField string, dir domain.SortDirection) ([]*domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows := []documentRow{}
	var err error

	if orderField == "" {
		query := `SELECT doc_key, version, doc FROM documents WHERE collection = $1 ORDER BY seq ASC`
		err = s.db.SelectContext(ctx, &rows, query, collection)
	} else {
		order := "ASC NULLS FIRST"
		if dir == domain.SortDesc {
			order = "DESC NULLS LAST"
		}
		query := fmt.Sprintf(`
			SELECT doc_key, version, doc FROM documents
			WHERE collection = $1
			ORDER BY doc -> $2 %s, seq ASC`, order)
		err = s.db.SelectContext(ctx, &rows, query, collection, orderField)
	}
	if err != nil {
		return nil, mapPGError("query "+collection, err)
	}

	out := make([]*domain.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, domain.StoreFailure("query "+collection, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *PostgresStore) exists(ctx context.Context, collection, key string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT count(*) FROM documents WHERE collection = $1 AND doc_key = $2", collection, key)
	return count > 0, err
}

// mapPGError understands both driver flavours: pgx (runtime) and lib/pq (migrations, tests).
func mapPGError(op string, err error) error {
	code := ""

	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	}

	if code == pgUniqueViolation {
		return fmt.Errorf("%w: %s: %w", domain.ErrConflict, op, err)
	}
	return domain.StoreFailure(op, err)
}
