// Package sqlite contains the SQLite implementation of the history
// repository interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/clipd/internal/ports/secondary"
)

// HistoryRepository implements secondary.HistoryRepository with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert persists a new history entry. The duplicate check against the
// newest stored row and the insert run in one transaction, so two
// concurrent inserts of the same content cannot both pass the check.
func (r *HistoryRepository) Insert(ctx context.Context, entry *secondary.EntryRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last string
	err = tx.QueryRowContext(ctx,
		"SELECT content FROM clipboard_history ORDER BY timestamp DESC, id DESC LIMIT 1",
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to read last entry: %w", err)
	}
	if err == nil && last == entry.Content {
		// Duplicate of the newest row, skip.
		return nil
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO clipboard_history (content, content_type, timestamp) VALUES (?, ?, ?)",
		entry.Content, entry.ContentType, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entry: %w", err)
	}
	return nil
}

// MostRecentContent returns the content of the newest stored entry.
func (r *HistoryRepository) MostRecentContent(ctx context.Context) (string, bool, error) {
	var content string
	err := r.db.QueryRowContext(ctx,
		"SELECT content FROM clipboard_history ORDER BY timestamp DESC, id DESC LIMIT 1",
	).Scan(&content)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read last entry: %w", err)
	}
	return content, true, nil
}

// ListRecent retrieves at most limit entries, most recent first.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.EntryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, content, timestamp, content_type FROM clipboard_history ORDER BY timestamp DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.EntryRecord
	for rows.Next() {
		record := &secondary.EntryRecord{}
		if err := rows.Scan(&record.ID, &record.Content, &record.Timestamp, &record.ContentType); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// GetByID retrieves a single entry by its id.
func (r *HistoryRepository) GetByID(ctx context.Context, id int64) (*secondary.EntryRecord, error) {
	record := &secondary.EntryRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, content, timestamp, content_type FROM clipboard_history WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Content, &record.Timestamp, &record.ContentType)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("entry %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return record, nil
}

// DeleteByID removes an entry. Deleting an unknown id succeeds.
func (r *HistoryRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM clipboard_history WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// DeleteAll removes every entry.
func (r *HistoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM clipboard_history")
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
