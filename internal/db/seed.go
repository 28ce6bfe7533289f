package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/example/clipd/internal/classify"
)

// sampleEntries covers each content type so a fresh install has
// something to browse.
var sampleEntries = []string{
	"Hello, this is a sample clipboard entry!",
	"const greet = (name) => {\n  console.log(`Hello, ${name}!`);\n};",
	"https://github.com/example/clipd",
	`{
  "user": {
    "id": 12345,
    "username": "john_doe",
    "email": "john@example.com",
    "roles": ["user", "moderator"],
    "lastLogin": "2024-01-15T10:30:00Z"
  }
}`,
	`{
  "config": {
    "appName": "clipd",
    "features": {
      "jsonViewer": true,
      "searchEnabled": true
    }
  }
}`,
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
}

// SeedFixtures populates the database with sample clipboard entries.
// Entries get distinct timestamps so recency ordering is well defined.
func SeedFixtures(database *sql.DB) error {
	base := time.Now().UTC().Add(-time.Duration(len(sampleEntries)) * time.Second)

	for i, content := range sampleEntries {
		ts := base.Add(time.Duration(i) * time.Second).Format(time.RFC3339)
		if _, err := database.Exec(
			"INSERT INTO clipboard_history (content, content_type, timestamp) VALUES (?, ?, ?)",
			content, classify.Detect(content), ts,
		); err != nil {
			return fmt.Errorf("seed clipboard history: %w", err)
		}
	}

	return nil
}
