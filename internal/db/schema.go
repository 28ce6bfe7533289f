package db

// SchemaSQL is the complete schema for fresh clipd installs.
//
// This is the single source of truth for the database schema. Tests
// load it via GetSchemaSQL() so test databases cannot drift from the
// schema shipped to users.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS clipboard_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content TEXT NOT NULL,
	timestamp TEXT DEFAULT (datetime('now')),
	content_type TEXT DEFAULT 'text'
);

CREATE INDEX IF NOT EXISTS idx_clipboard_history_timestamp
	ON clipboard_history(timestamp DESC);
`

// GetSchemaSQL returns the authoritative schema SQL for testing and
// diagnostics.
func GetSchemaSQL() string {
	return SchemaSQL
}
