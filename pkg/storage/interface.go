// Package storage defines the storage gateway the consistency engine relies on.
// It abstracts persistence of the shipment aggregate and transaction management
// so that different backends (PostgreSQL, in-memory) can provide concrete
// implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go -aux_files=shipments/pkg/storage=shipment.go,shipments/pkg/storage=delivery.go,shipments/pkg/storage=item.go
package storage

import "context"

// AllStorage is a composite interface that includes all entity-specific storage
// capabilities of the shipment aggregate.
type AllStorage interface {
	ShipmentStorage
	DeliveryStorage
	ItemStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same capabilities as AllStorage, and additionally
// allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes the provided callback with it, and
	// then commits when the callback returns nil or rolls back otherwise.
	// Exactly one of commit or rollback is attempted.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
