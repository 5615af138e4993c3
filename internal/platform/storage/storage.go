// Package storage persists product snapshots, one row per product code.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ozonwatch/price-watcher/internal/platform/models"
)

// Backend selects the storage implementation.
type Backend string

// Supported storage backends.
const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Config is the single configuration surface for all storage backends.
type Config struct {
	Backend Backend
	// DatabaseURL is the Postgres connection string. Required for BackendPostgres.
	DatabaseURL string
	// SQLitePath is the database file path. Required for BackendSQLite.
	SQLitePath string
}

// Store is the snapshot store. Upsert keeps at most one row per product code.
type Store interface {
	// EnsureSchema creates the snapshot table if it doesn't exist yet. Idempotent.
	EnsureSchema(ctx context.Context) error
	// Upsert overwrites the existing snapshot row for snapshot's product code,
	// or inserts a new one. Each call is one atomic transaction.
	Upsert(ctx context.Context, snapshot *models.Snapshot) error
	// Close closes the underlying database.
	Close() error
}

// Open opens the store selected by cfg and verifies connectivity.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("can't open Postgres connection: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("can't reach Postgres: %w", err)
		}
		return NewPostgres(db), nil
	case BackendSQLite:
		return NewSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
