package storage

import (
	"context"
	"shipments/pkg/domain"
)

// ItemStorage defines CRUD and query operations on container and bulk items.
type ItemStorage interface {
	// StoreContainerItems inserts container items and returns the stored rows.
	StoreContainerItems(ctx context.Context, items ...domain.ContainerItem) ([]domain.ContainerItem, error)
	// StoreBulkItems inserts bulk items and returns the stored rows.
	StoreBulkItems(ctx context.Context, items ...domain.BulkItem) ([]domain.BulkItem, error)
	// ContainerItemsByDeliveryID returns the container items of any of the
	// given deliveries.
	ContainerItemsByDeliveryID(ctx context.Context, deliveryIDs ...domain.DeliveryID) ([]domain.ContainerItem, error)
	// BulkItemsByDeliveryID returns the bulk items of any of the given
	// deliveries.
	BulkItemsByDeliveryID(ctx context.Context, deliveryIDs ...domain.DeliveryID) ([]domain.BulkItem, error)
	// DeleteContainerItemsByDeliveryID removes all container items of the given
	// deliveries.
	DeleteContainerItemsByDeliveryID(ctx context.Context, deliveryIDs ...domain.DeliveryID) error
	// DeleteBulkItemsByDeliveryID removes all bulk items of the given
	// deliveries.
	DeleteBulkItemsByDeliveryID(ctx context.Context, deliveryIDs ...domain.DeliveryID) error
}
