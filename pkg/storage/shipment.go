package storage

import (
	"context"
	"shipments/pkg/domain"
)

// ShipmentUpdates describes the mutable fields of a shipment. updated_at is
// always stamped by the backend.
type ShipmentUpdates struct {
	// Number is the new business number of the shipment.
	Number string
}

// ShipmentStorage defines CRUD and query operations on shipments.
// Lookups return nil without an error when nothing matches.
type ShipmentStorage interface {
	// StoreShipment inserts a shipment and returns the stored row including
	// its generated ID and created_at.
	StoreShipment(ctx context.Context, shipment domain.Shipment) (*domain.Shipment, error)
	// UpdateShipment applies updates to the shipment with the given ID and
	// returns the updated row, or nil if it does not exist.
	UpdateShipment(ctx context.Context, ID domain.ShipmentID, updates ShipmentUpdates) (*domain.Shipment, error)
	// DeleteShipments removes the given shipments. Backends cascade the delete
	// to deliveries and items.
	DeleteShipments(ctx context.Context, IDs ...domain.ShipmentID) error
	// ShipmentByID fetches a shipment by its surrogate ID.
	ShipmentByID(ctx context.Context, ID domain.ShipmentID) (*domain.Shipment, error)
	// ShipmentByNumber fetches a shipment by its business number.
	ShipmentByNumber(ctx context.Context, number string) (*domain.Shipment, error)
	// ShipmentExists reports whether a shipment holds the given number.
	ShipmentExists(ctx context.Context, number string) (bool, error)
	// AllShipments returns every shipment without deliveries.
	AllShipments(ctx context.Context) ([]domain.Shipment, error)
	// ShipmentsPage returns at most limit shipments starting at offset, ordered
	// by creation time.
	ShipmentsPage(ctx context.Context, limit, offset uint) ([]domain.Shipment, error)
	// ShipmentCount returns the total number of shipments.
	ShipmentCount(ctx context.Context) (int64, error)
}
