package memory_test

import (
	"context"
	"errors"
	"shipments/pkg/domain"
	"shipments/pkg/storage"
	"shipments/pkg/storage/memory"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, m *memory.Memory) (*domain.Shipment, *domain.Delivery) {
	t.Helper()
	ctx := context.Background()

	shipment, err := m.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
	require.NoError(t, err)

	delivery, err := m.StoreDelivery(ctx, domain.Delivery{
		ShipmentID: shipment.ID,
		Number:     "DEL-1",
		Type:       domain.DeliveryTypeContainer,
	})
	require.NoError(t, err)

	_, err = m.StoreContainerItems(ctx,
		domain.ContainerItem{DeliveryID: delivery.ID, MaterialNumber: "MAT-1", SerialNumber: "SER-1"},
		domain.ContainerItem{DeliveryID: delivery.ID, MaterialNumber: "MAT-1", SerialNumber: "SER-2"},
	)
	require.NoError(t, err)

	return shipment, delivery
}

func TestMemory_Clock(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := memory.New(memory.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	shipment, err := m.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
	require.NoError(t, err)
	assert.Equal(t, now, shipment.CreatedAt)
	assert.True(t, shipment.UpdatedAt.IsZero())

	updated, err := m.UpdateShipment(ctx, shipment.ID, storage.ShipmentUpdates{Number: "SHIP-2"})
	require.NoError(t, err)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestMemory_UniqueKeys(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()
	shipment, delivery := seed(t, m)

	_, err := m.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	_, err = m.StoreDelivery(ctx, domain.Delivery{ShipmentID: shipment.ID, Number: "DEL-1", Type: domain.DeliveryTypeBulk})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	_, err = m.StoreContainerItems(ctx,
		domain.ContainerItem{DeliveryID: delivery.ID, MaterialNumber: "MAT-1", SerialNumber: "SER-1"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	// a batch that repeats its own key is rejected as a whole
	_, err = m.StoreContainerItems(ctx,
		domain.ContainerItem{DeliveryID: delivery.ID, MaterialNumber: "MAT-2", SerialNumber: "SER-1"},
		domain.ContainerItem{DeliveryID: delivery.ID, MaterialNumber: "MAT-2", SerialNumber: "SER-1"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	items, err := m.ContainerItemsByDeliveryID(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	second, err := m.StoreShipment(ctx, domain.Shipment{Number: "SHIP-2"})
	require.NoError(t, err)
	_, err = m.UpdateShipment(ctx, second.ID, storage.ShipmentUpdates{Number: "SHIP-1"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	// renaming onto its own number is allowed
	_, err = m.UpdateShipment(ctx, second.ID, storage.ShipmentUpdates{Number: "SHIP-2"})
	require.NoError(t, err)
}

func TestMemory_ForeignKeys(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	_, err := m.StoreDelivery(ctx, domain.Delivery{Number: "DEL-1", Type: domain.DeliveryTypeBulk})
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrDuplicate)

	_, err = m.StoreBulkItems(ctx, domain.BulkItem{MaterialNumber: "M", EvdSealNumber: "S"})
	require.Error(t, err)

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, memory.Stats{}, stats)
}

func TestMemory_DeleteShipmentsCascades(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()
	shipment, delivery := seed(t, m)

	require.NoError(t, m.DeleteShipments(ctx, shipment.ID))

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, memory.Stats{}, stats)

	items, err := m.ContainerItemsByDeliveryID(ctx, delivery.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// numbers and item keys are released
	_, _ = seed(t, m)
}

func TestMemory_DeleteItemsAndDeliveries(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()
	shipment, delivery := seed(t, m)

	require.NoError(t, m.DeleteContainerItemsByDeliveryID(ctx, delivery.ID))

	stats, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, memory.Stats{Shipments: 1, Deliveries: 1}, stats)

	require.NoError(t, m.DeleteDeliveries(ctx, delivery.ID))

	deliveries, err := m.DeliveriesByShipmentID(ctx, shipment.ID)
	require.NoError(t, err)
	assert.Empty(t, deliveries)

	exists, err := m.DeliveryExists(ctx, "DEL-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemory_Ordering(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	numbers := []string{"S-3", "S-1", "S-2", "S-5", "S-4"}
	for _, n := range numbers {
		_, err := m.StoreShipment(ctx, domain.Shipment{Number: n})
		require.NoError(t, err)
	}

	all, err := m.AllShipments(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(numbers))
	for i := range numbers {
		assert.Equal(t, numbers[i], all[i].Number)
	}

	page, err := m.ShipmentsPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "S-2", page[0].Number)
	assert.Equal(t, "S-5", page[1].Number)

	page, err = m.ShipmentsPage(ctx, 2, 5)
	require.NoError(t, err)
	assert.Empty(t, page)

	count, err := m.ShipmentCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()
	_, _ = seed(t, m)

	shipment, err := m.ShipmentByNumber(ctx, "SHIP-1")
	require.NoError(t, err)
	shipment.Number = "mutated"

	again, err := m.ShipmentByNumber(ctx, "SHIP-1")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "SHIP-1", again.Number)
}

func TestMemory_Tx(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("commit publishes", func(t *testing.T) {
		t.Parallel()

		m := memory.New()
		err := m.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})

			return err
		})
		require.NoError(t, err)

		exists, err := m.ShipmentExists(ctx, "SHIP-1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("error rolls back", func(t *testing.T) {
		t.Parallel()

		m := memory.New()
		_, _ = seed(t, m)

		boom := errors.New("boom")
		err := m.WithTx(ctx, func(s storage.AllStorage) error {
			shipment, err := s.ShipmentByNumber(ctx, "SHIP-1")
			require.NoError(t, err)
			require.NoError(t, s.DeleteShipments(ctx, shipment.ID))

			// the deletion is visible inside the transaction only
			exists, err := s.ShipmentExists(ctx, "SHIP-1")
			require.NoError(t, err)
			assert.False(t, exists)

			exists, err = m.ShipmentExists(ctx, "SHIP-1")
			require.NoError(t, err)
			assert.True(t, exists)

			return boom
		})
		require.ErrorIs(t, err, boom)

		stats, err := m.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, memory.Stats{Shipments: 1, Deliveries: 1, ContainerItems: 2}, stats)
	})

	t.Run("panic rolls back", func(t *testing.T) {
		t.Parallel()

		m := memory.New()
		require.Panics(t, func() {
			_ = m.WithTx(ctx, func(s storage.AllStorage) error {
				_, _ = s.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
				panic("boom")
			})
		})

		exists, err := m.ShipmentExists(ctx, "SHIP-1")
		require.NoError(t, err)
		assert.False(t, exists)

		// the writer lock was released
		_, err = m.StoreShipment(ctx, domain.Shipment{Number: "SHIP-2"})
		require.NoError(t, err)
	})

	t.Run("misuse", func(t *testing.T) {
		t.Parallel()

		m := memory.New()
		require.ErrorIs(t, m.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, m.Rollback(), storage.ErrNotInTx)

		tx, err := m.Begin(ctx)
		require.NoError(t, err)

		_, err = tx.Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)

		require.NoError(t, tx.Commit())
		require.ErrorIs(t, tx.Commit(), storage.ErrTxDone)
		require.ErrorIs(t, tx.Rollback(), storage.ErrTxDone)

		_, err = tx.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
		require.ErrorIs(t, err, storage.ErrTxDone)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		m := memory.New()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := m.Begin(cctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("waiting for an open transaction honours the context", func(t *testing.T) {
		t.Parallel()

		m := memory.New()
		open, err := m.Begin(ctx)
		require.NoError(t, err)

		wctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, err = m.Begin(wctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		_, err = m.StoreShipment(wctx, domain.Shipment{Number: "SHIP-WAIT"})
		require.ErrorIs(t, err, context.DeadlineExceeded)

		require.NoError(t, open.Rollback())

		tx, err := m.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())
	})
}

func TestMemory_ConcurrentTransactionsSerialise(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = m.WithTx(ctx, func(s storage.AllStorage) error {
				exists, err := s.ShipmentExists(ctx, "SHIP-RACE")
				if err != nil {
					return err
				}
				if exists {
					return storage.ErrDuplicate
				}
				_, err = s.StoreShipment(ctx, domain.Shipment{Number: "SHIP-RACE"})

				return err
			})
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			require.ErrorIs(t, err, storage.ErrDuplicate)
		}
	}
	assert.Equal(t, 1, ok)
}
