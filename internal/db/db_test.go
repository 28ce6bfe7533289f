package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestOpen_CreatesSchemaAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	var name string
	err = database.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='clipboard_history'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("clipboard_history table missing: %v", err)
	}

	// Reopening an existing database succeeds (schema uses IF NOT EXISTS).
	database.Close()
	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	again.Close()
}

func TestSeedFixtures(t *testing.T) {
	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	defer database.Close()
	database.SetMaxOpenConns(1)

	if _, err := database.Exec(GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	if err := SeedFixtures(database); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	counts := map[string]int{}
	rows, err := database.Query("SELECT content_type, COUNT(*) FROM clipboard_history GROUP BY content_type")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	defer rows.Close()
	total := 0
	for rows.Next() {
		var ct string
		var n int
		if err := rows.Scan(&ct, &n); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		counts[ct] = n
		total += n
	}

	if total != 6 {
		t.Errorf("expected 6 sample entries, got %d", total)
	}
	for _, want := range []string{"text", "url", "json", "multiline"} {
		if counts[want] == 0 {
			t.Errorf("expected at least one %s sample", want)
		}
	}
}
