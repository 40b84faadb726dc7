package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/emsim/emsim/internal/testutil"
)

// newTestRepoDB opens a migrated in-memory database for repository tests.
func newTestRepoDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()

	tdb := testutil.NewTestDB(t)
	t.Cleanup(func() { tdb.Close(t) })
	tdb.RunMigrations(t, "../database/migrations")
	return tdb.DB, context.Background()
}

// dbTime truncates to the precision that survives an RFC 3339 column.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func TestEncodeDecodeList(t *testing.T) {
	items := []string{"Chest pain", "Shortness of breath"}

	encoded, err := encodeList(items)
	if err != nil {
		t.Fatalf("encodeList() error = %v", err)
	}
	decoded, err := decodeList(encoded)
	if err != nil {
		t.Fatalf("decodeList() error = %v", err)
	}
	if len(decoded) != 2 || decoded[0] != items[0] || decoded[1] != items[1] {
		t.Errorf("round trip = %v, want %v", decoded, items)
	}

	empty, err := encodeList(nil)
	if err != nil {
		t.Fatalf("encodeList(nil) error = %v", err)
	}
	if empty.Valid {
		t.Error("empty list should encode as NULL")
	}
	if decoded, err := decodeList(empty); err != nil || decoded != nil {
		t.Errorf("decodeList(NULL) = %v, %v, want nil, nil", decoded, err)
	}
}
