// Package memory provides an in-memory implementation of storage.Storage.
//
// Rows live in arena maps keyed by surrogate ID with explicit foreign key
// fields. Unique keys and cascading deletes are enforced the same way the
// PostgreSQL schema enforces them. A transaction works on a private clone of
// the state which replaces the shared state on commit; transactions and
// auto-commit writes are serialised, reads never block on an open transaction.
package memory

import (
	"context"
	"maps"
	"shipments/pkg/domain"
	"shipments/pkg/storage"
	"slices"
	"sync"
	"time"
)

type record[T any] struct {
	seq   uint64
	value T
}

type containerKey struct {
	deliveryID     domain.DeliveryID
	materialNumber string
	serialNumber   string
}

type bulkKey struct {
	deliveryID     domain.DeliveryID
	materialNumber string
	evdSealNumber  string
}

type state struct {
	seq uint64

	shipments       map[domain.ShipmentID]record[domain.Shipment]
	shipmentNumbers map[string]domain.ShipmentID

	deliveries      map[domain.DeliveryID]record[domain.Delivery]
	deliveryNumbers map[string]domain.DeliveryID

	containerItems map[domain.ItemID]record[domain.ContainerItem]
	containerKeys  map[containerKey]domain.ItemID

	bulkItems map[domain.ItemID]record[domain.BulkItem]
	bulkKeys  map[bulkKey]domain.ItemID
}

func newState() *state {
	return &state{
		shipments:       map[domain.ShipmentID]record[domain.Shipment]{},
		shipmentNumbers: map[string]domain.ShipmentID{},
		deliveries:      map[domain.DeliveryID]record[domain.Delivery]{},
		deliveryNumbers: map[string]domain.DeliveryID{},
		containerItems:  map[domain.ItemID]record[domain.ContainerItem]{},
		containerKeys:   map[containerKey]domain.ItemID{},
		bulkItems:       map[domain.ItemID]record[domain.BulkItem]{},
		bulkKeys:        map[bulkKey]domain.ItemID{},
	}
}

func (s *state) clone() *state {
	return &state{
		seq:             s.seq,
		shipments:       maps.Clone(s.shipments),
		shipmentNumbers: maps.Clone(s.shipmentNumbers),
		deliveries:      maps.Clone(s.deliveries),
		deliveryNumbers: maps.Clone(s.deliveryNumbers),
		containerItems:  maps.Clone(s.containerItems),
		containerKeys:   maps.Clone(s.containerKeys),
		bulkItems:       maps.Clone(s.bulkItems),
		bulkKeys:        maps.Clone(s.bulkKeys),
	}
}

func (s *state) next() uint64 {
	s.seq++

	return s.seq
}

func sorted[K comparable, T any](m map[K]record[T], keep func(T) bool) []T {
	recs := make([]record[T], 0, len(m))
	for _, r := range m {
		if keep == nil || keep(r.value) {
			recs = append(recs, r)
		}
	}
	slices.SortFunc(recs, func(a, b record[T]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})

	out := make([]T, len(recs))
	for i := range recs {
		out[i] = recs[i].value
	}

	return out
}

// db is the state shared by a Memory store and every transaction begun from it.
type db struct {
	// writer is a one-slot semaphore serialising transactions and auto-commit
	// writes. Waiters give up when their context ends.
	writer chan struct{}
	// mu guards state.
	mu    sync.RWMutex
	state *state
	now   func() time.Time
}

func (d *db) acquire(ctx context.Context) error {
	select {
	case d.writer <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint: wrapcheck
	}
}

func (d *db) release() {
	<-d.writer
}

// Memory implements storage.Storage and storage.TxStorage. Like the
// PostgreSQL backend, the same type serves both roles: tx is nil outside a
// transaction.
type Memory struct {
	db *db

	tx   *state
	done bool
}

var (
	_ storage.Storage   = (*Memory)(nil)
	_ storage.TxStorage = (*Memory)(nil)
)

// Option customises a Memory store.
type Option func(*db)

// WithClock overrides the clock used for created_at/updated_at stamps.
func WithClock(now func() time.Time) Option {
	return func(d *db) { d.now = now }
}

// New returns an empty in-memory store.
func New(opts ...Option) *Memory {
	d := &db{
		writer: make(chan struct{}, 1),
		state:  newState(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(d)
	}

	return &Memory{db: d}
}

// Close is a no-op kept for interface compatibility.
func (m *Memory) Close() error { return nil }

// Begin starts a transaction. It blocks until any other transaction has
// ended or ctx is done.
func (m *Memory) Begin(ctx context.Context) (storage.TxStorage, error) {
	if m.tx != nil {
		return nil, storage.ErrAlreadyInTx
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := m.db.acquire(ctx); err != nil {
		return nil, err
	}
	m.db.mu.RLock()
	tx := m.db.state.clone()
	m.db.mu.RUnlock()

	return &Memory{db: m.db, tx: tx}, nil
}

// Commit publishes the transaction's state.
func (m *Memory) Commit() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}
	if m.done {
		return storage.ErrTxDone
	}

	m.db.mu.Lock()
	m.db.state = m.tx
	m.db.mu.Unlock()

	m.end()

	return nil
}

// Rollback discards the transaction's state.
func (m *Memory) Rollback() error {
	if m.tx == nil {
		return storage.ErrNotInTx
	}
	if m.done {
		return storage.ErrTxDone
	}

	m.end()

	return nil
}

func (m *Memory) end() {
	m.done = true
	m.tx = newState()
	m.db.release()
}

// WithTx begins a transaction, runs cb and commits on success or rolls back
// when cb returns an error or panics.
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

// Stats reports the number of rows per table.
type Stats struct {
	Shipments      int
	Deliveries     int
	ContainerItems int
	BulkItems      int
}

// Stats returns the current row counts.
func (m *Memory) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := m.read(ctx, func(s *state) error {
		st = Stats{
			Shipments:      len(s.shipments),
			Deliveries:     len(s.deliveries),
			ContainerItems: len(s.containerItems),
			BulkItems:      len(s.bulkItems),
		}

		return nil
	})

	return st, err
}

func (m *Memory) read(ctx context.Context, fn func(s *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.tx != nil {
		if m.done {
			return storage.ErrTxDone
		}

		return fn(m.tx)
	}

	m.db.mu.RLock()
	defer m.db.mu.RUnlock()

	return fn(m.db.state)
}

// write runs fn against the transaction state, or, outside a transaction,
// against a clone that replaces the shared state only when fn succeeds.
func (m *Memory) write(ctx context.Context, fn func(s *state, now time.Time) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.tx != nil {
		if m.done {
			return storage.ErrTxDone
		}

		return fn(m.tx, m.db.now())
	}

	if err := m.db.acquire(ctx); err != nil {
		return err
	}
	defer m.db.release()

	m.db.mu.RLock()
	next := m.db.state.clone()
	m.db.mu.RUnlock()

	if err := fn(next, m.db.now()); err != nil {
		return err
	}

	m.db.mu.Lock()
	m.db.state = next
	m.db.mu.Unlock()

	return nil
}
