package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	"github.com/ozonwatch/price-watcher/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	pgmodels "github.com/ozonwatch/price-watcher/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
)

// Open opens connection to the integration test DB.
// The test is skipped when DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("set DATABASE_URL to run Postgres integration tests")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertSnapshots is a helper test function to insert snapshots.
func InsertSnapshots(t *testing.T, exc qrm.Executable, snapshots ...pgmodels.PriceSnapshots) {
	t.Helper()

	if len(snapshots) == 0 {
		return
	}

	toInsert := make([]pgmodels.PriceSnapshots, 0, len(snapshots))
	toInsert = append(toInsert, snapshots...)

	_, err := table.PriceSnapshots.INSERT(table.PriceSnapshots.MutableColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert snapshots", err)
	}
}

// GetSnapshots is a helper test function to get all snapshots.
func GetSnapshots(t *testing.T, queryable qrm.Queryable) []pgmodels.PriceSnapshots {
	t.Helper()

	snapshots := []pgmodels.PriceSnapshots{}
	err := table.PriceSnapshots.SELECT(table.PriceSnapshots.AllColumns).
		WHERE(table.PriceSnapshots.ID.IS_NOT_NULL()).
		Query(queryable, &snapshots)
	if err != nil {
		t.Fatal("can't get snapshots", err)
	}

	return snapshots
}

// GetSnapshotsByProductCode is a helper test function to get snapshots by product code.
func GetSnapshotsByProductCode(t *testing.T, queryable qrm.Queryable, productCode string) []pgmodels.PriceSnapshots {
	t.Helper()

	snapshots := []pgmodels.PriceSnapshots{}
	err := table.PriceSnapshots.SELECT(table.PriceSnapshots.AllColumns).
		WHERE(table.PriceSnapshots.ProductCode.EQ(pg.String(productCode))).
		Query(queryable, &snapshots)
	if err != nil {
		t.Fatal("can't get snapshots", err)
	}

	return snapshots
}

// CleanupData is a helper test function to delete all snapshots.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.PriceSnapshots.DELETE().WHERE(table.PriceSnapshots.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete snapshots data", err)
	}
}
