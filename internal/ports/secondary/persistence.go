// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import "context"

// HistoryRepository defines the secondary port for clipboard history
// persistence.
type HistoryRepository interface {
	// Insert persists a new history entry. If the most recently stored
	// entry holds identical content the insert is skipped; a skipped
	// duplicate is not an error.
	Insert(ctx context.Context, entry *EntryRecord) error

	// MostRecentContent returns the content of the newest stored entry.
	// The bool is false when the store is empty.
	MostRecentContent(ctx context.Context) (string, bool, error)

	// ListRecent retrieves at most limit entries, most recent first.
	ListRecent(ctx context.Context, limit int) ([]*EntryRecord, error)

	// GetByID retrieves a single entry by its id.
	GetByID(ctx context.Context, id int64) (*EntryRecord, error)

	// DeleteByID removes an entry. Deleting an unknown id succeeds.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll removes every entry. Succeeds on an empty store.
	DeleteAll(ctx context.Context) error
}

// EntryRecord represents a clipboard history entry as stored in
// persistence.
type EntryRecord struct {
	ID          int64
	Content     string
	Timestamp   string // RFC3339
	ContentType string
}
