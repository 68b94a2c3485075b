package postgres_test

import (
	"context"
	"shipments/pkg/domain"
	"shipments/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreShipment(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("store shipment", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, uuid.UUID(res.ID))
		require.Equal(t, "SHIP-1", res.Number)
		require.False(t, res.CreatedAt.IsZero())
		require.True(t, res.UpdatedAt.IsZero())
	})

	t.Run("duplicate shipment number", func(t *testing.T) {
		t.Parallel()

		_, err := pgSQL.StoreShipment(ctx, domain.Shipment{Number: "SHIP-DUP"})
		require.NoError(t, err)

		_, err = pgSQL.StoreShipment(ctx, domain.Shipment{Number: "SHIP-DUP"})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})
}

func TestPgSQL_ShipmentLookups(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	stored, err := pgSQL.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
	require.NoError(t, err)

	byID, err := pgSQL.ShipmentByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored.Number, byID.Number)

	byNumber, err := pgSQL.ShipmentByNumber(ctx, "SHIP-1")
	require.NoError(t, err)
	require.Equal(t, stored.ID, byNumber.ID)

	missing, err := pgSQL.ShipmentByNumber(ctx, "SHIP-404")
	require.NoError(t, err)
	require.Nil(t, missing)

	missing, err = pgSQL.ShipmentByID(ctx, domain.ShipmentID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)

	exists, err := pgSQL.ShipmentExists(ctx, "SHIP-1")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = pgSQL.ShipmentExists(ctx, "SHIP-404")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestPgSQL_UpdateShipment(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	first, err := pgSQL.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
	require.NoError(t, err)
	_, err = pgSQL.StoreShipment(ctx, domain.Shipment{Number: "SHIP-2"})
	require.NoError(t, err)

	t.Run("rename", func(t *testing.T) {
		res, err := pgSQL.UpdateShipment(ctx, first.ID, storage.ShipmentUpdates{Number: "SHIP-1A"})
		require.NoError(t, err)
		require.Equal(t, "SHIP-1A", res.Number)
		require.Equal(t, first.ID, res.ID)
		require.False(t, res.UpdatedAt.IsZero())
	})

	t.Run("rename onto existing number", func(t *testing.T) {
		_, err := pgSQL.UpdateShipment(ctx, first.ID, storage.ShipmentUpdates{Number: "SHIP-2"})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("unknown id", func(t *testing.T) {
		res, err := pgSQL.UpdateShipment(ctx, domain.ShipmentID(uuid.New()), storage.ShipmentUpdates{Number: "X"})
		require.NoError(t, err)
		require.Nil(t, res)
	})
}

func TestPgSQL_ShipmentsPage(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	numbers := []string{"S-1", "S-2", "S-3", "S-4", "S-5"}
	for _, n := range numbers {
		_, err := pgSQL.StoreShipment(ctx, domain.Shipment{Number: n})
		require.NoError(t, err)
	}

	all, err := pgSQL.AllShipments(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(numbers))
	for i := range numbers {
		require.Equal(t, numbers[i], all[i].Number)
	}

	count, err := pgSQL.ShipmentCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, len(numbers), count)

	page, err := pgSQL.ShipmentsPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "S-3", page[0].Number)
	require.Equal(t, "S-4", page[1].Number)

	page, err = pgSQL.ShipmentsPage(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)

	page, err = pgSQL.ShipmentsPage(ctx, 2, 10)
	require.NoError(t, err)
	require.Empty(t, page)
}

func TestPgSQL_DeleteShipments_Cascades(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	shipment, err := pgSQL.StoreShipment(ctx, domain.Shipment{Number: "SHIP-1"})
	require.NoError(t, err)
	delivery, err := pgSQL.StoreDelivery(ctx, domain.Delivery{
		ShipmentID: shipment.ID,
		Number:     "DEL-1",
		Type:       domain.DeliveryTypeBulk,
	})
	require.NoError(t, err)
	_, err = pgSQL.StoreBulkItems(ctx, domain.BulkItem{
		DeliveryID:     delivery.ID,
		MaterialNumber: "MAT-1",
		EvdSealNumber:  "SEAL-1",
	})
	require.NoError(t, err)

	require.NoError(t, pgSQL.DeleteShipments(ctx))
	require.NoError(t, pgSQL.DeleteShipments(ctx, shipment.ID))

	exists, err := pgSQL.ShipmentExists(ctx, "SHIP-1")
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = pgSQL.DeliveryExists(ctx, "DEL-1")
	require.NoError(t, err)
	require.False(t, exists)

	items, err := pgSQL.BulkItemsByDeliveryID(ctx, delivery.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}
