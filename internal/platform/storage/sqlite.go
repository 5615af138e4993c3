package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ozonwatch/price-watcher/internal/platform/models"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS price_snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	captured_at DATETIME NOT NULL,
	captured_at_epoch INTEGER NOT NULL,
	product_code TEXT NOT NULL,
	price REAL,
	card_price REAL,
	original_price REAL,
	price_change TEXT NOT NULL,
	rating REAL,
	rating_change INTEGER NOT NULL DEFAULT 0,
	questions_count INTEGER NOT NULL DEFAULT 0,
	reviews_count INTEGER NOT NULL DEFAULT 0,
	available INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_price_snapshots_product_code ON price_snapshots (product_code);
`

// SQLite is the embedded snapshot store backed by modernc.org/sqlite.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at path and configures WAL mode.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open SQLite database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("can't exec %s: %w", pragma, err)
		}
	}

	return &SQLite{db: db}, nil
}

// EnsureSchema creates the snapshot table and its index if they don't exist yet.
func (s *SQLite) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("can't create snapshots schema: %w", err)
	}
	return nil
}

// Upsert overwrites the snapshot row for snapshot's product code or inserts a
// new one, in one transaction per call.
func (s *SQLite) Upsert(ctx context.Context, snapshot *models.Snapshot) error {
	err := runInTransaction(ctx, s.db, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM price_snapshots WHERE product_code = ? LIMIT 1`,
			snapshot.ProductCode,
		).Scan(&id)

		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("can't look up existing snapshot: %w", err)
		}

		if errors.Is(err, sql.ErrNoRows) {
			result, err := tx.ExecContext(ctx,
				`INSERT INTO price_snapshots (
					captured_at, captured_at_epoch, product_code,
					price, card_price, original_price, price_change,
					rating, rating_change, questions_count, reviews_count, available
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				snapshot.CapturedAt, snapshot.CapturedAtEpoch, snapshot.ProductCode,
				snapshot.Price, snapshot.CardPrice, snapshot.OriginalPrice, string(snapshot.PriceChange),
				snapshot.Rating, snapshot.RatingChange, snapshot.QuestionsCount, snapshot.ReviewsCount, snapshot.Available,
			)
			if err != nil {
				return fmt.Errorf("can't insert snapshot: %w", err)
			}
			if insertedID, err := result.LastInsertId(); err == nil {
				snapshot.ID = int(insertedID)
			}
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE price_snapshots SET
				captured_at = ?, captured_at_epoch = ?,
				price = ?, card_price = ?, original_price = ?, price_change = ?,
				rating = ?, rating_change = ?, questions_count = ?, reviews_count = ?, available = ?
			WHERE id = ?`,
			snapshot.CapturedAt, snapshot.CapturedAtEpoch,
			snapshot.Price, snapshot.CardPrice, snapshot.OriginalPrice, string(snapshot.PriceChange),
			snapshot.Rating, snapshot.RatingChange, snapshot.QuestionsCount, snapshot.ReviewsCount, snapshot.Available,
			id,
		)
		if err != nil {
			return fmt.Errorf("can't update snapshot: %w", err)
		}
		snapshot.ID = int(id)

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't upsert snapshot: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
