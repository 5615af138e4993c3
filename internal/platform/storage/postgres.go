package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ozonwatch/price-watcher/internal/platform/models"
	"github.com/ozonwatch/price-watcher/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/ozonwatch/price-watcher/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	_ "github.com/lib/pq"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS price_snapshots (
	id SERIAL PRIMARY KEY,
	captured_at TIMESTAMP NOT NULL,
	captured_at_epoch BIGINT NOT NULL,
	product_code VARCHAR(255) NOT NULL,
	price DOUBLE PRECISION,
	card_price DOUBLE PRECISION,
	original_price DOUBLE PRECISION,
	price_change VARCHAR(255) NOT NULL,
	rating DOUBLE PRECISION,
	rating_change INTEGER NOT NULL DEFAULT 0,
	questions_count INTEGER NOT NULL DEFAULT 0,
	reviews_count INTEGER NOT NULL DEFAULT 0,
	available BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_price_snapshots_product_code ON price_snapshots (product_code);
`

// Postgres is the snapshot store backed by PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// EnsureSchema creates the snapshot table and its index if they don't exist yet.
func (p Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("can't create snapshots schema: %w", err)
	}
	return nil
}

// Upsert overwrites the snapshot row for snapshot's product code or inserts a
// new one. Lookup and write happen in one transaction, so a failure mid-upsert
// never leaves a partial row behind.
func (p Postgres) Upsert(ctx context.Context, snapshot *models.Snapshot) error {
	dbSnapshot := toDBSnapshot(snapshot)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var existing pgmodels.PriceSnapshots
		err := table.PriceSnapshots.SELECT(table.PriceSnapshots.ID).
			WHERE(table.PriceSnapshots.ProductCode.EQ(pg.String(snapshot.ProductCode))).
			LIMIT(1).
			QueryContext(ctx, tx, &existing)

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't look up existing snapshot: %w", err)
		}

		if errors.Is(err, qrm.ErrNoRows) {
			err := table.PriceSnapshots.INSERT(table.PriceSnapshots.MutableColumns).
				MODEL(dbSnapshot).
				RETURNING(table.PriceSnapshots.ID).
				QueryContext(ctx, tx, dbSnapshot)
			if err != nil {
				return fmt.Errorf("can't insert snapshot: %w", err)
			}
			snapshot.ID = int(dbSnapshot.ID)
			return nil
		}

		_, err = table.PriceSnapshots.UPDATE(table.PriceSnapshots.MutableColumns).
			MODEL(dbSnapshot).
			WHERE(table.PriceSnapshots.ID.EQ(pg.Int32(existing.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update snapshot: %w", err)
		}
		snapshot.ID = int(existing.ID)

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't upsert snapshot: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (p Postgres) Close() error {
	return p.db.Close()
}
