// Package app implements the primary port services.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/clipd/internal/classify"
	"github.com/example/clipd/internal/ports/primary"
	"github.com/example/clipd/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	repo      secondary.HistoryRepository
	clipboard secondary.ClipboardProvider
}

// NewHistoryService creates a new HistoryService with injected
// dependencies.
func NewHistoryService(repo secondary.HistoryRepository, clipboard secondary.ClipboardProvider) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		repo:      repo,
		clipboard: clipboard,
	}
}

// Record classifies content and persists it as a new history entry.
func (s *HistoryServiceImpl) Record(ctx context.Context, content string) error {
	entry := &secondary.EntryRecord{
		Content:     content,
		ContentType: classify.Detect(content),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("failed to record entry: %w", err)
	}
	return nil
}

// ListHistory returns at most limit entries, most recent first. A
// non-positive limit falls back to primary.DefaultHistoryLimit.
func (s *HistoryServiceImpl) ListHistory(ctx context.Context, limit int) ([]*primary.Entry, error) {
	if limit <= 0 {
		limit = primary.DefaultHistoryLimit
	}

	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.Entry, len(records))
	for i, r := range records {
		entries[i] = recordToEntry(r)
	}
	return entries, nil
}

// DeleteEntry removes one entry. Unknown ids are a no-op.
func (s *HistoryServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// ClearHistory removes every entry.
func (s *HistoryServiceImpl) ClearHistory(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// CopyEntry writes a stored entry's content back to the clipboard.
func (s *HistoryServiceImpl) CopyEntry(ctx context.Context, id int64) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load entry: %w", err)
	}
	if err := s.clipboard.Write(record.Content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// CopyText writes arbitrary text to the clipboard.
func (s *HistoryServiceImpl) CopyText(ctx context.Context, text string) error {
	if err := s.clipboard.Write(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// recordToEntry converts a persistence record to the primary port type.
func recordToEntry(r *secondary.EntryRecord) *primary.Entry {
	return &primary.Entry{
		ID:          r.ID,
		Content:     r.Content,
		Timestamp:   r.Timestamp,
		ContentType: r.ContentType,
	}
}
