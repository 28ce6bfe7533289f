// Package sqlite_test contains integration tests for the SQLite history
// repository.
//
// Test databases load the authoritative schema via db.GetSchemaSQL() so
// test schemas cannot drift from the one shipped to users.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/clipd/internal/db"
	"github.com/example/clipd/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// One connection: a pooled second connection to :memory: would see
	// its own empty database.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// entryAt builds an EntryRecord with a timestamp offset from a fixed
// base, so recency ordering in tests is unambiguous.
func entryAt(content, contentType string, offset time.Duration) *secondary.EntryRecord {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &secondary.EntryRecord{
		Content:     content,
		ContentType: contentType,
		Timestamp:   base.Add(offset).Format(time.RFC3339),
	}
}
