// Package primary defines the primary ports (driving adapters) for the
// application. CLI commands talk to the application through these
// interfaces.
package primary

import "context"

// DefaultHistoryLimit is the number of entries returned when a caller
// passes a non-positive limit.
const DefaultHistoryLimit = 20

// HistoryService is the primary port for clipboard history operations.
type HistoryService interface {
	// Record classifies content and persists it as a new history entry.
	// Duplicates of the most recent stored entry are silently skipped.
	Record(ctx context.Context, content string) error

	// ListHistory returns at most limit entries, most recent first.
	// A non-positive limit falls back to DefaultHistoryLimit.
	ListHistory(ctx context.Context, limit int) ([]*Entry, error)

	// DeleteEntry removes one entry. Unknown ids are a no-op.
	DeleteEntry(ctx context.Context, id int64) error

	// ClearHistory removes every entry.
	ClearHistory(ctx context.Context) error

	// CopyEntry writes a stored entry's content back to the clipboard.
	CopyEntry(ctx context.Context, id int64) error

	// CopyText writes arbitrary text to the clipboard.
	CopyText(ctx context.Context, text string) error
}

// Entry is a clipboard history entry as exposed to primary adapters.
type Entry struct {
	ID          int64
	Content     string
	Timestamp   string
	ContentType string
}
