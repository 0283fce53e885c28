package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when a transaction is started from a handle
	// that is already bound to one.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside of a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrTxDone is returned when a finished transaction is used again.
	ErrTxDone = errors.New("transaction already committed or rolled back")
	// ErrClosed is returned when a closed storage is used.
	ErrClosed = errors.New("storage closed")
)
