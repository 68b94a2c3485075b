package memory

import (
	"context"
	"fmt"
	"shipments/pkg/domain"
	"shipments/pkg/storage"
	"time"

	"github.com/google/uuid"
)

func (m *Memory) StoreDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error) {
	var out domain.Delivery
	err := m.write(ctx, func(s *state, now time.Time) error {
		if _, ok := s.shipments[delivery.ShipmentID]; !ok {
			return fmt.Errorf("could not store delivery: shipment %s does not exist", delivery.ShipmentID)
		}
		if _, ok := s.deliveryNumbers[delivery.Number]; ok {
			return fmt.Errorf("could not store delivery: %w: delivery_number", storage.ErrDuplicate)
		}

		out = domain.Delivery{
			ID:         domain.DeliveryID(uuid.New()),
			ShipmentID: delivery.ShipmentID,
			Number:     delivery.Number,
			Type:       delivery.Type,
			CreatedAt:  now,
		}
		s.deliveries[out.ID] = record[domain.Delivery]{seq: s.next(), value: out}
		s.deliveryNumbers[out.Number] = out.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (m *Memory) DeleteDeliveries(ctx context.Context, ids ...domain.DeliveryID) error {
	if len(ids) == 0 {
		return nil
	}

	return m.write(ctx, func(s *state, _ time.Time) error {
		for _, id := range ids {
			s.deleteDelivery(id)
		}

		return nil
	})
}

// deleteDelivery removes a delivery together with its items.
func (s *state) deleteDelivery(id domain.DeliveryID) {
	rec, ok := s.deliveries[id]
	if !ok {
		return
	}

	s.deleteItems(id)
	delete(s.deliveryNumbers, rec.value.Number)
	delete(s.deliveries, id)
}

func (m *Memory) DeliveryByNumber(ctx context.Context, number string) (*domain.Delivery, error) {
	var out *domain.Delivery
	err := m.read(ctx, func(s *state) error {
		if id, ok := s.deliveryNumbers[number]; ok {
			v := s.deliveries[id].value
			out = &v
		}

		return nil
	})

	return out, err
}

func (m *Memory) DeliveryExists(ctx context.Context, number string) (bool, error) {
	var found bool
	err := m.read(ctx, func(s *state) error {
		_, found = s.deliveryNumbers[number]

		return nil
	})

	return found, err
}

func (m *Memory) DeliveriesByShipmentID(ctx context.Context,
	shipmentIDs ...domain.ShipmentID) ([]domain.Delivery, error) {
	if len(shipmentIDs) == 0 {
		return nil, nil
	}

	wanted := make(map[domain.ShipmentID]struct{}, len(shipmentIDs))
	for _, id := range shipmentIDs {
		wanted[id] = struct{}{}
	}

	var out []domain.Delivery
	err := m.read(ctx, func(s *state) error {
		out = sorted(s.deliveries, func(d domain.Delivery) bool {
			_, ok := wanted[d.ShipmentID]

			return ok
		})

		return nil
	})

	return out, err
}
