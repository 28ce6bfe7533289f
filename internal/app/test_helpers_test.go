package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/clipd/internal/ports/secondary"
)

// Ensure the mocks implement the interfaces.
var _ secondary.HistoryRepository = (*mockHistoryRepo)(nil)
var _ secondary.ClipboardProvider = (*mockClipboard)(nil)

// mockHistoryRepo implements secondary.HistoryRepository for testing.
type mockHistoryRepo struct {
	entries   map[int64]*secondary.EntryRecord
	nextID    int64
	insertErr error
	listErr   error
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{
		entries: make(map[int64]*secondary.EntryRecord),
		nextID:  1,
	}
}

func (m *mockHistoryRepo) Insert(ctx context.Context, entry *secondary.EntryRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if last, ok, _ := m.MostRecentContent(ctx); ok && last == entry.Content {
		return nil
	}
	stored := *entry
	stored.ID = m.nextID
	m.nextID++
	m.entries[stored.ID] = &stored
	return nil
}

func (m *mockHistoryRepo) MostRecentContent(ctx context.Context) (string, bool, error) {
	recent := m.sorted()
	if len(recent) == 0 {
		return "", false, nil
	}
	return recent[0].Content, true, nil
}

func (m *mockHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*secondary.EntryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	recent := m.sorted()
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (m *mockHistoryRepo) GetByID(ctx context.Context, id int64) (*secondary.EntryRecord, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry %d not found", id)
	}
	return entry, nil
}

func (m *mockHistoryRepo) DeleteByID(ctx context.Context, id int64) error {
	delete(m.entries, id)
	return nil
}

func (m *mockHistoryRepo) DeleteAll(ctx context.Context) error {
	m.entries = make(map[int64]*secondary.EntryRecord)
	return nil
}

// sorted returns entries most recent first (insertion id descending).
func (m *mockHistoryRepo) sorted() []*secondary.EntryRecord {
	out := make([]*secondary.EntryRecord, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// mockClipboard implements secondary.ClipboardProvider for testing.
type mockClipboard struct {
	content  string
	writeErr error
}

func (m *mockClipboard) Read() (string, error) {
	return m.content, nil
}

func (m *mockClipboard) Write(text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.content = text
	return nil
}
