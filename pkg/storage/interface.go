// Package storage defines the persistence interfaces the application relies
// on. It abstracts history persistence, job enqueueing and transaction
// management so that different backends (PostgreSQL, in-memory) can provide
// concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"time"

	"unitconv/pkg/domain"

	"github.com/riverqueue/river"
)

// HistoryStorage persists the conversion history log. Entries are returned
// newest first.
type HistoryStorage interface {
	// StoreHistoryEntry inserts entry and returns it as stored.
	StoreHistoryEntry(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error)
	// HistoryEntries returns up to limit entries, newest first. A zero limit
	// returns all entries.
	HistoryEntries(ctx context.Context, limit uint) ([]domain.HistoryEntry, error)
	// TrimHistory deletes everything but the keep most recent entries and
	// returns the number of deleted entries.
	TrimHistory(ctx context.Context, keep uint) (int64, error)
	// ClearHistory deletes all entries and returns the number of deleted entries.
	ClearHistory(ctx context.Context) (int64, error)
}

// JobStorage enqueues background jobs. When supported by the backend the
// insert is atomic with the surrounding transaction.
type JobStorage interface {
	// AddJob enqueues a new job and reports whether it was inserted (false
	// when skipped as a duplicate).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// AllStorage is the set of domain capabilities available both inside and
// outside of transactions.
type AllStorage interface {
	HistoryStorage
}

// TxStorage is a storage handle bound to a transaction. It becomes unusable
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits on success
	// or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// Timestamp returns the current time truncated to the precision stored by
// the backends.
func Timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
