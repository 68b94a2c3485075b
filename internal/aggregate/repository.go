// Package aggregate loads and persists whole Shipment subtrees on top of the
// storage gateway. A Repository is built once per use-case over the storage
// handle of that use-case (usually a transaction) and holds no other state.
//
// Subtrees are assembled by joining rows on their foreign key fields: one
// query for the deliveries of all requested shipments and one query per item
// table for all of their items.
package aggregate

import (
	"context"
	"fmt"
	"shipments/pkg/domain"
	"shipments/pkg/storage"
)

// Repository exposes aggregate level reads and writes. The zero value is not
// usable; use New.
type Repository struct {
	storage storage.AllStorage
}

// New returns a Repository bound to st.
func New(st storage.AllStorage) Repository {
	return Repository{storage: st}
}

// ShipmentExists reports whether a shipment holds number.
func (r Repository) ShipmentExists(ctx context.Context, number string) (bool, error) {
	exists, err := r.storage.ShipmentExists(ctx, number)
	if err != nil {
		return false, fmt.Errorf("could not check shipment existence: %w", err)
	}

	return exists, nil
}

// ShipmentByNumber returns the shipment row without its deliveries, or nil.
func (r Repository) ShipmentByNumber(ctx context.Context, number string) (*domain.Shipment, error) {
	shipment, err := r.storage.ShipmentByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("could not get shipment by number: %w", err)
	}

	return shipment, nil
}

// ShipmentWithDeliveries returns the shipment with its full subtree, or nil.
func (r Repository) ShipmentWithDeliveries(ctx context.Context, number string) (*domain.Shipment, error) {
	shipment, err := r.ShipmentByNumber(ctx, number)
	if err != nil || shipment == nil {
		return nil, err
	}

	subtree := []domain.Shipment{*shipment}
	if err := r.LoadSubtrees(ctx, subtree); err != nil {
		return nil, err
	}

	return &subtree[0], nil
}

func (r Repository) DeliveryExists(ctx context.Context, number string) (bool, error) {
	exists, err := r.storage.DeliveryExists(ctx, number)
	if err != nil {
		return false, fmt.Errorf("could not check delivery existence: %w", err)
	}

	return exists, nil
}

// DeliveryByNumber returns the delivery row with its items, or nil.
func (r Repository) DeliveryByNumber(ctx context.Context, number string) (*domain.Delivery, error) {
	delivery, err := r.storage.DeliveryByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("could not get delivery by number: %w", err)
	}
	if delivery == nil {
		return nil, nil
	}

	deliveries := []domain.Delivery{*delivery}
	if err := r.loadItems(ctx, deliveries); err != nil {
		return nil, err
	}

	return &deliveries[0], nil
}

// DeliveryWithShipmentSubtree resolves a delivery to its parent shipment and
// returns that shipment with every sibling delivery loaded, or nil.
func (r Repository) DeliveryWithShipmentSubtree(ctx context.Context, number string) (*domain.Shipment, error) {
	delivery, err := r.storage.DeliveryByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("could not get delivery by number: %w", err)
	}
	if delivery == nil {
		return nil, nil
	}

	shipment, err := r.storage.ShipmentByID(ctx, delivery.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get shipment of delivery: %w", err)
	}
	if shipment == nil {
		return nil, nil
	}

	subtree := []domain.Shipment{*shipment}
	if err := r.LoadSubtrees(ctx, subtree); err != nil {
		return nil, err
	}

	return &subtree[0], nil
}

// DeliveriesByShipmentID returns the deliveries of a shipment with their items.
func (r Repository) DeliveriesByShipmentID(ctx context.Context, id domain.ShipmentID) ([]domain.Delivery, error) {
	deliveries, err := r.storage.DeliveriesByShipmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get deliveries of shipment: %w", err)
	}

	if err := r.loadItems(ctx, deliveries); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func (r Repository) ContainerItemsByDeliveryID(ctx context.Context,
	id domain.DeliveryID) (domain.ContainerItems, error) {
	items, err := r.storage.ContainerItemsByDeliveryID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get container items: %w", err)
	}

	return items, nil
}

func (r Repository) BulkItemsByDeliveryID(ctx context.Context, id domain.DeliveryID) (domain.BulkItems, error) {
	items, err := r.storage.BulkItemsByDeliveryID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get bulk items: %w", err)
	}

	return items, nil
}

// AllShipments returns every shipment with its subtree in insertion order.
func (r Repository) AllShipments(ctx context.Context) ([]domain.Shipment, error) {
	shipments, err := r.storage.AllShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get shipments: %w", err)
	}

	if err := r.LoadSubtrees(ctx, shipments); err != nil {
		return nil, err
	}

	return shipments, nil
}

// ShipmentsPage returns up to limit shipments after skipping offset, each
// with its subtree, along with the total number of shipments.
func (r Repository) ShipmentsPage(ctx context.Context, limit, offset uint) ([]domain.Shipment, int64, error) {
	total, err := r.storage.ShipmentCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count shipments: %w", err)
	}

	shipments, err := r.storage.ShipmentsPage(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("could not get shipments page: %w", err)
	}

	if err := r.LoadSubtrees(ctx, shipments); err != nil {
		return nil, 0, err
	}

	return shipments, total, nil
}

// LoadSubtrees fills Deliveries, and the items of every delivery, for each
// of the given shipments in place.
func (r Repository) LoadSubtrees(ctx context.Context, shipments []domain.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}

	ids := make([]domain.ShipmentID, len(shipments))
	for i := range shipments {
		ids[i] = shipments[i].ID
	}

	deliveries, err := r.storage.DeliveriesByShipmentID(ctx, ids...)
	if err != nil {
		return fmt.Errorf("could not get deliveries of shipments: %w", err)
	}

	if err := r.loadItems(ctx, deliveries); err != nil {
		return err
	}

	byShipment := make(map[domain.ShipmentID][]domain.Delivery, len(shipments))
	for _, d := range deliveries {
		byShipment[d.ShipmentID] = append(byShipment[d.ShipmentID], d)
	}
	for i := range shipments {
		shipments[i].Deliveries = byShipment[shipments[i].ID]
	}

	return nil
}

// loadItems sets Items on every delivery to the item set matching its type.
func (r Repository) loadItems(ctx context.Context, deliveries []domain.Delivery) error {
	var containerIDs, bulkIDs []domain.DeliveryID
	for _, d := range deliveries {
		switch d.Type {
		case domain.DeliveryTypeContainer:
			containerIDs = append(containerIDs, d.ID)
		case domain.DeliveryTypeBulk:
			bulkIDs = append(bulkIDs, d.ID)
		}
	}

	containerItems := map[domain.DeliveryID]domain.ContainerItems{}
	if len(containerIDs) > 0 {
		items, err := r.storage.ContainerItemsByDeliveryID(ctx, containerIDs...)
		if err != nil {
			return fmt.Errorf("could not get container items: %w", err)
		}
		for _, item := range items {
			containerItems[item.DeliveryID] = append(containerItems[item.DeliveryID], item)
		}
	}

	bulkItems := map[domain.DeliveryID]domain.BulkItems{}
	if len(bulkIDs) > 0 {
		items, err := r.storage.BulkItemsByDeliveryID(ctx, bulkIDs...)
		if err != nil {
			return fmt.Errorf("could not get bulk items: %w", err)
		}
		for _, item := range items {
			bulkItems[item.DeliveryID] = append(bulkItems[item.DeliveryID], item)
		}
	}

	for i := range deliveries {
		switch deliveries[i].Type {
		case domain.DeliveryTypeContainer:
			deliveries[i].Items = containerItems[deliveries[i].ID]
		case domain.DeliveryTypeBulk:
			deliveries[i].Items = bulkItems[deliveries[i].ID]
		}
	}

	return nil
}

// StoreShipment inserts a new shipment and returns it with its identity.
func (r Repository) StoreShipment(ctx context.Context, number string) (*domain.Shipment, error) {
	shipment, err := r.storage.StoreShipment(ctx, domain.Shipment{Number: number})
	if err != nil {
		return nil, fmt.Errorf("could not store shipment: %w", err)
	}

	return shipment, nil
}

// RenameShipment sets a new number on the shipment and stamps updated_at.
func (r Repository) RenameShipment(ctx context.Context,
	id domain.ShipmentID,
	number string) (*domain.Shipment, error) {
	shipment, err := r.storage.UpdateShipment(ctx, id, storage.ShipmentUpdates{Number: number})
	if err != nil {
		return nil, fmt.Errorf("could not rename shipment: %w", err)
	}

	return shipment, nil
}

// StoreDelivery inserts the delivery, then its items bound to the new
// delivery id. delivery.ShipmentID must already be resolved.
func (r Repository) StoreDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error) {
	if delivery.Items == nil || delivery.Items.Type() != delivery.Type {
		return nil, fmt.Errorf("delivery %s items do not match its type %s", delivery.Number, delivery.Type)
	}

	stored, err := r.storage.StoreDelivery(ctx, delivery)
	if err != nil {
		return nil, fmt.Errorf("could not store delivery: %w", err)
	}

	switch items := delivery.Items.(type) {
	case domain.ContainerItems:
		rows := make([]domain.ContainerItem, len(items))
		for i := range items {
			rows[i] = items[i]
			rows[i].DeliveryID = stored.ID
		}

		res, err := r.storage.StoreContainerItems(ctx, rows...)
		if err != nil {
			return nil, fmt.Errorf("could not store container items: %w", err)
		}
		stored.Items = domain.ContainerItems(res)
	case domain.BulkItems:
		rows := make([]domain.BulkItem, len(items))
		for i := range items {
			rows[i] = items[i]
			rows[i].DeliveryID = stored.ID
		}

		res, err := r.storage.StoreBulkItems(ctx, rows...)
		if err != nil {
			return nil, fmt.Errorf("could not store bulk items: %w", err)
		}
		stored.Items = domain.BulkItems(res)
	}

	return stored, nil
}

// DeleteDeliveries removes the items of the given deliveries and then the
// deliveries themselves.
func (r Repository) DeleteDeliveries(ctx context.Context, deliveries ...domain.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	ids := make([]domain.DeliveryID, len(deliveries))
	for i := range deliveries {
		ids[i] = deliveries[i].ID
	}

	if err := r.storage.DeleteContainerItemsByDeliveryID(ctx, ids...); err != nil {
		return fmt.Errorf("could not delete container items: %w", err)
	}
	if err := r.storage.DeleteBulkItemsByDeliveryID(ctx, ids...); err != nil {
		return fmt.Errorf("could not delete bulk items: %w", err)
	}
	if err := r.storage.DeleteDeliveries(ctx, ids...); err != nil {
		return fmt.Errorf("could not delete deliveries: %w", err)
	}

	return nil
}

// DeleteShipment removes the shipment's loaded subtree and then the shipment.
func (r Repository) DeleteShipment(ctx context.Context, shipment domain.Shipment) error {
	if err := r.DeleteDeliveries(ctx, shipment.Deliveries...); err != nil {
		return err
	}

	if err := r.storage.DeleteShipments(ctx, shipment.ID); err != nil {
		return fmt.Errorf("could not delete shipment: %w", err)
	}

	return nil
}
