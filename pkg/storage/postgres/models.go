package postgres

import (
	"database/sql"
	"shipments/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgShipment struct {
	ID     uuid.UUID `db:"id"              goqu:"skipinsert"`
	Number string    `db:"shipment_number"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgShipment) ToDomain() *domain.Shipment {
	return &domain.Shipment{
		ID:        domain.ShipmentID(p.ID),
		Number:    p.Number,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgShipment) FromDomain(shipment domain.Shipment) {
	*p = PgShipment{
		ID:        uuid.UUID(shipment.ID),
		Number:    shipment.Number,
		CreatedAt: shipment.CreatedAt,
		UpdatedAt: nullTime(shipment.UpdatedAt),
	}
}

type PgDelivery struct {
	ID         uuid.UUID `db:"id"              goqu:"skipinsert"`
	ShipmentID uuid.UUID `db:"shipment_id"`
	Number     string    `db:"delivery_number"`
	Type       string    `db:"delivery_type"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDelivery) ToDomain() *domain.Delivery {
	return &domain.Delivery{
		ID:         domain.DeliveryID(p.ID),
		ShipmentID: domain.ShipmentID(p.ShipmentID),
		Number:     p.Number,
		Type:       domain.DeliveryType(p.Type),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (p *PgDelivery) FromDomain(delivery domain.Delivery) {
	*p = PgDelivery{
		ID:         uuid.UUID(delivery.ID),
		ShipmentID: uuid.UUID(delivery.ShipmentID),
		Number:     delivery.Number,
		Type:       string(delivery.Type),
		CreatedAt:  delivery.CreatedAt,
		UpdatedAt:  nullTime(delivery.UpdatedAt),
	}
}

type PgContainerItem struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	DeliveryID uuid.UUID `db:"delivery_id"`

	MaterialNumber  string `db:"material_number"`
	SerialNumber    string `db:"serial_number"`
	ConnectionLabel string `db:"connection_label"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgContainerItem) ToDomain() domain.ContainerItem {
	return domain.ContainerItem{
		ID:              domain.ItemID(p.ID),
		DeliveryID:      domain.DeliveryID(p.DeliveryID),
		MaterialNumber:  p.MaterialNumber,
		SerialNumber:    p.SerialNumber,
		ConnectionLabel: p.ConnectionLabel,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgContainerItem) FromDomain(item domain.ContainerItem) {
	*p = PgContainerItem{
		ID:              uuid.UUID(item.ID),
		DeliveryID:      uuid.UUID(item.DeliveryID),
		MaterialNumber:  item.MaterialNumber,
		SerialNumber:    item.SerialNumber,
		ConnectionLabel: item.ConnectionLabel,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       nullTime(item.UpdatedAt),
	}
}

type PgBulkItem struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	DeliveryID uuid.UUID `db:"delivery_id"`

	MaterialNumber  string `db:"material_number"`
	EvdSealNumber   string `db:"evd_seal_number"`
	ConnectionLabel string `db:"connection_label"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBulkItem) ToDomain() domain.BulkItem {
	return domain.BulkItem{
		ID:              domain.ItemID(p.ID),
		DeliveryID:      domain.DeliveryID(p.DeliveryID),
		MaterialNumber:  p.MaterialNumber,
		EvdSealNumber:   p.EvdSealNumber,
		ConnectionLabel: p.ConnectionLabel,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgBulkItem) FromDomain(item domain.BulkItem) {
	*p = PgBulkItem{
		ID:              uuid.UUID(item.ID),
		DeliveryID:      uuid.UUID(item.DeliveryID),
		MaterialNumber:  item.MaterialNumber,
		EvdSealNumber:   item.EvdSealNumber,
		ConnectionLabel: item.ConnectionLabel,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       nullTime(item.UpdatedAt),
	}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{
		Time:  t,
		Valid: !t.IsZero(),
	}
}

func pgShipmentsToDomain(rows []PgShipment) []domain.Shipment {
	out := make([]domain.Shipment, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgDeliveriesToDomain(rows []PgDelivery) []domain.Delivery {
	out := make([]domain.Delivery, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func uuids[T ~[16]byte](ids []T) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		out[i] = uuid.UUID(id)
	}

	return out
}
