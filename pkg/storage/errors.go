package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrTxDone is returned when a transactional handle is used after Commit or
	// Rollback.
	ErrTxDone = errors.New("tx already committed or rolled back")
	// ErrDuplicate is returned (wrapped) when a write violates one of the unique
	// keys: shipment number, delivery number or an item's composite key.
	ErrDuplicate = errors.New("duplicate key")
)
