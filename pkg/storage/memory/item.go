package memory

import (
	"context"
	"fmt"
	"shipments/pkg/domain"
	"shipments/pkg/storage"
	"time"

	"github.com/google/uuid"
)

func (m *Memory) StoreContainerItems(ctx context.Context,
	items ...domain.ContainerItem) ([]domain.ContainerItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	var out []domain.ContainerItem
	err := m.write(ctx, func(s *state, now time.Time) error {
		seen := make(map[containerKey]struct{}, len(items))
		for _, item := range items {
			if _, ok := s.deliveries[item.DeliveryID]; !ok {
				return fmt.Errorf("could not store container item: delivery %s does not exist", item.DeliveryID)
			}

			key := containerKey{item.DeliveryID, item.MaterialNumber, item.SerialNumber}
			_, stored := s.containerKeys[key]
			_, repeated := seen[key]
			if stored || repeated {
				return fmt.Errorf("could not store container item: %w: container item key", storage.ErrDuplicate)
			}
			seen[key] = struct{}{}
		}

		out = make([]domain.ContainerItem, len(items))
		for i, item := range items {
			item.ID = domain.ItemID(uuid.New())
			item.CreatedAt = now
			item.UpdatedAt = time.Time{}

			s.containerItems[item.ID] = record[domain.ContainerItem]{seq: s.next(), value: item}
			s.containerKeys[containerKey{item.DeliveryID, item.MaterialNumber, item.SerialNumber}] = item.ID
			out[i] = item
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (m *Memory) StoreBulkItems(ctx context.Context, items ...domain.BulkItem) ([]domain.BulkItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	var out []domain.BulkItem
	err := m.write(ctx, func(s *state, now time.Time) error {
		seen := make(map[bulkKey]struct{}, len(items))
		for _, item := range items {
			if _, ok := s.deliveries[item.DeliveryID]; !ok {
				return fmt.Errorf("could not store bulk item: delivery %s does not exist", item.DeliveryID)
			}

			key := bulkKey{item.DeliveryID, item.MaterialNumber, item.EvdSealNumber}
			_, stored := s.bulkKeys[key]
			_, repeated := seen[key]
			if stored || repeated {
				return fmt.Errorf("could not store bulk item: %w: bulk item key", storage.ErrDuplicate)
			}
			seen[key] = struct{}{}
		}

		out = make([]domain.BulkItem, len(items))
		for i, item := range items {
			item.ID = domain.ItemID(uuid.New())
			item.CreatedAt = now
			item.UpdatedAt = time.Time{}

			s.bulkItems[item.ID] = record[domain.BulkItem]{seq: s.next(), value: item}
			s.bulkKeys[bulkKey{item.DeliveryID, item.MaterialNumber, item.EvdSealNumber}] = item.ID
			out[i] = item
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func deliverySet(ids []domain.DeliveryID) map[domain.DeliveryID]struct{} {
	set := make(map[domain.DeliveryID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func (m *Memory) ContainerItemsByDeliveryID(ctx context.Context,
	deliveryIDs ...domain.DeliveryID) ([]domain.ContainerItem, error) {
	if len(deliveryIDs) == 0 {
		return nil, nil
	}

	wanted := deliverySet(deliveryIDs)

	var out []domain.ContainerItem
	err := m.read(ctx, func(s *state) error {
		out = sorted(s.containerItems, func(item domain.ContainerItem) bool {
			_, ok := wanted[item.DeliveryID]

			return ok
		})

		return nil
	})

	return out, err
}

func (m *Memory) BulkItemsByDeliveryID(ctx context.Context,
	deliveryIDs ...domain.DeliveryID) ([]domain.BulkItem, error) {
	if len(deliveryIDs) == 0 {
		return nil, nil
	}

	wanted := deliverySet(deliveryIDs)

	var out []domain.BulkItem
	err := m.read(ctx, func(s *state) error {
		out = sorted(s.bulkItems, func(item domain.BulkItem) bool {
			_, ok := wanted[item.DeliveryID]

			return ok
		})

		return nil
	})

	return out, err
}

func (m *Memory) DeleteContainerItemsByDeliveryID(ctx context.Context, deliveryIDs ...domain.DeliveryID) error {
	if len(deliveryIDs) == 0 {
		return nil
	}

	wanted := deliverySet(deliveryIDs)

	return m.write(ctx, func(s *state, _ time.Time) error {
		for id, item := range s.containerItems {
			if _, ok := wanted[item.value.DeliveryID]; ok {
				s.deleteContainerItem(id)
			}
		}

		return nil
	})
}

func (m *Memory) DeleteBulkItemsByDeliveryID(ctx context.Context, deliveryIDs ...domain.DeliveryID) error {
	if len(deliveryIDs) == 0 {
		return nil
	}

	wanted := deliverySet(deliveryIDs)

	return m.write(ctx, func(s *state, _ time.Time) error {
		for id, item := range s.bulkItems {
			if _, ok := wanted[item.value.DeliveryID]; ok {
				s.deleteBulkItem(id)
			}
		}

		return nil
	})
}

func (s *state) deleteItems(deliveryID domain.DeliveryID) {
	for id, item := range s.containerItems {
		if item.value.DeliveryID == deliveryID {
			s.deleteContainerItem(id)
		}
	}
	for id, item := range s.bulkItems {
		if item.value.DeliveryID == deliveryID {
			s.deleteBulkItem(id)
		}
	}
}

func (s *state) deleteContainerItem(id domain.ItemID) {
	item := s.containerItems[id].value
	delete(s.containerKeys, containerKey{item.DeliveryID, item.MaterialNumber, item.SerialNumber})
	delete(s.containerItems, id)
}

func (s *state) deleteBulkItem(id domain.ItemID) {
	item := s.bulkItems[id].value
	delete(s.bulkKeys, bulkKey{item.DeliveryID, item.MaterialNumber, item.EvdSealNumber})
	delete(s.bulkItems, id)
}
