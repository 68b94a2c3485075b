package storage

import (
	"context"
	"shipments/pkg/domain"
)

// DeliveryStorage defines CRUD and query operations on deliveries. Deliveries
// returned by these methods never carry items; see ItemStorage.
type DeliveryStorage interface {
	// StoreDelivery inserts a delivery row (its Items are ignored) and returns
	// the stored row including its generated ID.
	StoreDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error)
	// DeleteDeliveries removes the given deliveries. Backends cascade the
	// delete to their items.
	DeleteDeliveries(ctx context.Context, IDs ...domain.DeliveryID) error
	// DeliveryByNumber fetches a delivery by its business number.
	DeliveryByNumber(ctx context.Context, number string) (*domain.Delivery, error)
	// DeliveryExists reports whether any delivery holds the given number.
	DeliveryExists(ctx context.Context, number string) (bool, error)
	// DeliveriesByShipmentID returns the deliveries owned by any of the given
	// shipments.
	DeliveriesByShipmentID(ctx context.Context, shipmentIDs ...domain.ShipmentID) ([]domain.Delivery, error)
}
