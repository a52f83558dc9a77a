package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smartbizlabs/assistgen/libs/db"
)

// Repository is a schemaless document archive on Postgres. Generated inputs
// and results are appended as JSONB rows grouped by collection name; nothing
// in the request path ever reads them back.
type Repository struct {
	pool   *db.Pool
	schema string
}

func NewRepository(pool *db.Pool, schema string) *Repository {
	if schema == "" {
		schema = "public"
	}
	return &Repository{pool: pool, schema: schema}
}

func (r *Repository) table() string {
	return pgx.Identifier{r.schema, "documents"}.Sanitize()
}

// EnsureSchema creates the archive table if missing. Callers treat failure
// as a degraded archive, not a startup error.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if r.schema != "public" {
		if _, err := r.pool.Exec(ctx, fmt.Sprintf(
			`CREATE SCHEMA IF NOT EXISTS %s`, pgx.Identifier{r.schema}.Sanitize(),
		)); err != nil {
			return err
		}
	}
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY,
			collection text NOT NULL,
			body jsonb NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)
	`, r.table()))
	return err
}

func (r *Repository) CreateDocument(ctx context.Context, collection string, body any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	id := uuid.NewString()
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, collection, body)
		VALUES ($1, $2, $3)
	`, r.table()), id, collection, payload)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) ListCollectionNames(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT DISTINCT collection
		FROM %s
		ORDER BY collection
	`, r.table()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) Ready(ctx context.Context) error {
	return db.ReadyCheck(r.pool)(ctx)
}
