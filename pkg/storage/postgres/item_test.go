package postgres_test

import (
	"context"
	"shipments/pkg/domain"
	"shipments/pkg/storage"
	"shipments/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func storeDeliveries(t *testing.T, pgSQL *postgres.PgSQL) (*domain.Delivery, *domain.Delivery) {
	t.Helper()
	ctx := context.Background()

	shipment, err := pgSQL.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
	require.NoError(t, err)

	container, err := pgSQL.StoreDelivery(ctx, domain.Delivery{
		ShipmentID: shipment.ID,
		Number:     "DEL-C",
		Type:       domain.DeliveryTypeContainer,
	})
	require.NoError(t, err)

	bulk, err := pgSQL.StoreDelivery(ctx, domain.Delivery{
		ShipmentID: shipment.ID,
		Number:     "DEL-B",
		Type:       domain.DeliveryTypeBulk,
	})
	require.NoError(t, err)

	return container, bulk
}

func TestPgSQL_ContainerItems(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	container, _ := storeDeliveries(t, pgSQL)

	stored, err := pgSQL.StoreContainerItems(ctx,
		domain.ContainerItem{DeliveryID: container.ID, MaterialNumber: "MAT-1", SerialNumber: "SER-1", ConnectionLabel: "A"},
		domain.ContainerItem{DeliveryID: container.ID, MaterialNumber: "MAT-1", SerialNumber: "SER-2"},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, "A", stored[0].ConnectionLabel)
	require.Empty(t, stored[1].ConnectionLabel)

	empty, err := pgSQL.StoreContainerItems(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = pgSQL.StoreContainerItems(ctx,
		domain.ContainerItem{DeliveryID: container.ID, MaterialNumber: "MAT-1", SerialNumber: "SER-1"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	items, err := pgSQL.ContainerItemsByDeliveryID(ctx, container.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "SER-1", items[0].SerialNumber)

	require.NoError(t, pgSQL.DeleteContainerItemsByDeliveryID(ctx, container.ID))

	items, err = pgSQL.ContainerItemsByDeliveryID(ctx, container.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestPgSQL_BulkItems(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	_, bulk := storeDeliveries(t, pgSQL)

	stored, err := pgSQL.StoreBulkItems(ctx,
		domain.BulkItem{DeliveryID: bulk.ID, MaterialNumber: "MAT-1", EvdSealNumber: "SEAL-1"},
	)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, bulk.ID, stored[0].DeliveryID)

	_, err = pgSQL.StoreBulkItems(ctx,
		domain.BulkItem{DeliveryID: bulk.ID, MaterialNumber: "MAT-1", EvdSealNumber: "SEAL-1"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	items, err := pgSQL.BulkItemsByDeliveryID(ctx, bulk.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, pgSQL.DeleteBulkItemsByDeliveryID(ctx, bulk.ID))

	items, err = pgSQL.BulkItemsByDeliveryID(ctx, bulk.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestPgSQL_WithTx_RollsBackAggregate(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
		shipment, err := s.StoreShipment(ctx, domain.Shipment{Number: "SHIP-TX"})
		require.NoError(t, err)

		delivery, err := s.StoreDelivery(ctx, domain.Delivery{
			ShipmentID: shipment.ID,
			Number:     "DEL-TX",
			Type:       domain.DeliveryTypeBulk,
		})
		require.NoError(t, err)

		_, err = s.StoreBulkItems(ctx,
			domain.BulkItem{DeliveryID: delivery.ID, MaterialNumber: "M", EvdSealNumber: "S"},
			domain.BulkItem{DeliveryID: delivery.ID, MaterialNumber: "M", EvdSealNumber: "S"},
		)

		return err
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	exists, err := pgSQL.ShipmentExists(ctx, "SHIP-TX")
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = pgSQL.DeliveryExists(ctx, "DEL-TX")
	require.NoError(t, err)
	require.False(t, exists)
}
