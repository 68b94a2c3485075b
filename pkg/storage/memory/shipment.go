package memory

import (
	"context"
	"fmt"
	"shipments/pkg/domain"
	"shipments/pkg/storage"
	"time"

	"github.com/google/uuid"
)

func (m *Memory) StoreShipment(ctx context.Context, shipment domain.Shipment) (*domain.Shipment, error) {
	var out domain.Shipment
	err := m.write(ctx, func(s *state, now time.Time) error {
		if _, ok := s.shipmentNumbers[shipment.Number]; ok {
			return fmt.Errorf("could not store shipment: %w: shipment_number", storage.ErrDuplicate)
		}

		out = domain.Shipment{
			ID:        domain.ShipmentID(uuid.New()),
			Number:    shipment.Number,
			CreatedAt: now,
		}
		s.shipments[out.ID] = record[domain.Shipment]{seq: s.next(), value: out}
		s.shipmentNumbers[out.Number] = out.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (m *Memory) UpdateShipment(ctx context.Context,
	id domain.ShipmentID,
	updates storage.ShipmentUpdates) (*domain.Shipment, error) {
	var out *domain.Shipment
	err := m.write(ctx, func(s *state, now time.Time) error {
		rec, ok := s.shipments[id]
		if !ok {
			return nil
		}

		if owner, taken := s.shipmentNumbers[updates.Number]; taken && owner != id {
			return fmt.Errorf("could not update shipment: %w: shipment_number", storage.ErrDuplicate)
		}

		delete(s.shipmentNumbers, rec.value.Number)
		rec.value.Number = updates.Number
		rec.value.UpdatedAt = now
		s.shipments[id] = rec
		s.shipmentNumbers[updates.Number] = id

		updated := rec.value
		out = &updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (m *Memory) DeleteShipments(ctx context.Context, ids ...domain.ShipmentID) error {
	if len(ids) == 0 {
		return nil
	}

	return m.write(ctx, func(s *state, _ time.Time) error {
		for _, id := range ids {
			rec, ok := s.shipments[id]
			if !ok {
				continue
			}

			for deliveryID, d := range s.deliveries {
				if d.value.ShipmentID == id {
					s.deleteDelivery(deliveryID)
				}
			}

			delete(s.shipmentNumbers, rec.value.Number)
			delete(s.shipments, id)
		}

		return nil
	})
}

func (m *Memory) ShipmentByID(ctx context.Context, id domain.ShipmentID) (*domain.Shipment, error) {
	var out *domain.Shipment
	err := m.read(ctx, func(s *state) error {
		if rec, ok := s.shipments[id]; ok {
			v := rec.value
			out = &v
		}

		return nil
	})

	return out, err
}

func (m *Memory) ShipmentByNumber(ctx context.Context, number string) (*domain.Shipment, error) {
	var out *domain.Shipment
	err := m.read(ctx, func(s *state) error {
		if id, ok := s.shipmentNumbers[number]; ok {
			v := s.shipments[id].value
			out = &v
		}

		return nil
	})

	return out, err
}

func (m *Memory) ShipmentExists(ctx context.Context, number string) (bool, error) {
	var found bool
	err := m.read(ctx, func(s *state) error {
		_, found = s.shipmentNumbers[number]

		return nil
	})

	return found, err
}

func (m *Memory) AllShipments(ctx context.Context) ([]domain.Shipment, error) {
	var out []domain.Shipment
	err := m.read(ctx, func(s *state) error {
		out = sorted(s.shipments, nil)

		return nil
	})

	return out, err
}

func (m *Memory) ShipmentsPage(ctx context.Context, limit, offset uint) ([]domain.Shipment, error) {
	var out []domain.Shipment
	err := m.read(ctx, func(s *state) error {
		all := sorted(s.shipments, nil)
		if offset >= uint(len(all)) {
			return nil
		}

		end := min(offset+limit, uint(len(all)))
		out = all[offset:end]

		return nil
	})

	return out, err
}

func (m *Memory) ShipmentCount(ctx context.Context) (int64, error) {
	var count int64
	err := m.read(ctx, func(s *state) error {
		count = int64(len(s.shipments))

		return nil
	})

	return count, err
}
