// Package memory implements the storage interfaces in process memory. It
// backs the history log when no database is configured and in tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"unitconv/pkg/domain"
	"unitconv/pkg/storage"
)

// Memory keeps history entries newest first.
type Memory struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
	closed  bool
}

var _ storage.Storage = (*Memory)(nil)

// New returns an empty in-memory store.
func New() *Memory {
	return &Memory{}
}

func (m *Memory) StoreHistoryEntry(_ context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, storage.ErrClosed
	}
	m.entries = prepend(m.entries, entry)

	return &entry, nil
}

func (m *Memory) HistoryEntries(_ context.Context, limit uint) ([]domain.HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, storage.ErrClosed
	}

	return head(m.entries, limit), nil
}

func (m *Memory) TrimHistory(_ context.Context, keep uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, storage.ErrClosed
	}

	var n int64
	m.entries, n = trim(m.entries, keep)

	return n, nil
}

func (m *Memory) ClearHistory(ctx context.Context) (int64, error) {
	return m.TrimHistory(ctx, 0)
}

// Close marks the store closed. Later calls fail with storage.ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.entries = nil

	return nil
}

// Begin starts a transaction working on a snapshot of the current entries.
// Commit replaces the store contents with the snapshot; concurrent writers
// are not detected, so callers serialize their transactions.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, storage.ErrClosed
	}

	return &Tx{parent: m, entries: slices.Clone(m.entries)}, nil
}

func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// Tx is an in-memory transaction.
type Tx struct {
	parent  *Memory
	entries []domain.HistoryEntry
	done    bool
}

var _ storage.TxStorage = (*Tx)(nil)

func (t *Tx) StoreHistoryEntry(_ context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	if t.done {
		return nil, storage.ErrTxDone
	}
	t.entries = prepend(t.entries, entry)

	return &entry, nil
}

func (t *Tx) HistoryEntries(_ context.Context, limit uint) ([]domain.HistoryEntry, error) {
	if t.done {
		return nil, storage.ErrTxDone
	}

	return head(t.entries, limit), nil
}

func (t *Tx) TrimHistory(_ context.Context, keep uint) (int64, error) {
	if t.done {
		return 0, storage.ErrTxDone
	}

	var n int64
	t.entries, n = trim(t.entries, keep)

	return n, nil
}

func (t *Tx) ClearHistory(ctx context.Context) (int64, error) {
	return t.TrimHistory(ctx, 0)
}

func (t *Tx) Commit() error {
	if t.done {
		return storage.ErrTxDone
	}
	t.done = true

	t.parent.mu.Lock()
	defer t.parent.mu.Unlock()

	if t.parent.closed {
		return storage.ErrClosed
	}
	t.parent.entries = t.entries

	return nil
}

func (t *Tx) Rollback() error {
	if t.done {
		return storage.ErrTxDone
	}
	t.done = true
	t.entries = nil

	return nil
}

func prepend(entries []domain.HistoryEntry, entry domain.HistoryEntry) []domain.HistoryEntry {
	return slices.Insert(entries, 0, entry)
}

func head(entries []domain.HistoryEntry, limit uint) []domain.HistoryEntry {
	n := len(entries)
	if limit > 0 && int(limit) < n { //nolint: gosec
		n = int(limit) //nolint: gosec
	}

	return slices.Clone(entries[:n])
}

func trim(entries []domain.HistoryEntry, keep uint) ([]domain.HistoryEntry, int64) {
	if int(keep) >= len(entries) { //nolint: gosec
		return entries, 0
	}
	deleted := int64(len(entries) - int(keep)) //nolint: gosec

	return slices.Clone(entries[:keep]), deleted
}
