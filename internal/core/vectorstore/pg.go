package vectorstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/markdave123-py/Indexa/internal/config"
	"github.com/markdave123-py/Indexa/internal/core"
	"github.com/markdave123-py/Indexa/internal/models"
)

// PgIndex stores vector records in Postgres with the pgvector extension.
type PgIndex struct {
	db *sql.DB
}

func NewPgIndex(ctx context.Context, cfg *config.Config) (core.VectorIndex, error) {
	if cfg == nil {
		return nil, fmt.Errorf("vector index configuration is nil")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Sensible pool settings for a long-lived handle; adjust as needed.
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	ctxPing, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureBootstrapped(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &PgIndex{db: db}, nil
}

func (x *PgIndex) Close() error {
	if x.db != nil {
		return x.db.Close()
	}
	return nil
}

// Upsert writes all records in a single transaction. Records sharing an id
// with an existing row replace it, so re-running the same document is an
// overwrite, not a duplicate.
func (x *PgIndex) Upsert(ctx context.Context, namespace string, records []models.VectorRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := x.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", core.ErrIndexWrite, err)
	}

	const q = `
		INSERT INTO vector_records (namespace, id, embedding, metadata, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (namespace, id) DO UPDATE
		SET embedding = EXCLUDED.embedding,
		    metadata  = EXCLUDED.metadata,
		    updated_at = now()
	`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: prepare: %v", core.ErrIndexWrite, err)
	}
	defer stmt.Close()

	for i := range records {
		rec := &records[i]
		meta, err := json.Marshal(rec.Metadata)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: marshal metadata for %s: %v", core.ErrIndexWrite, rec.ID, err)
		}
		vec := pgvector.NewVector(rec.Values)

		if _, err := stmt.ExecContext(ctx, namespace, rec.ID, vec, meta); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: %s: %v", core.ErrIndexWrite, rec.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", core.ErrIndexWrite, err)
	}
	return nil
}
