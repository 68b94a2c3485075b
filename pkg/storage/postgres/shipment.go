package postgres

import (
	"context"
	"fmt"
	"shipments/pkg/domain"
	"shipments/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	shipmentsTable = "shipments"
)

func (p *PgSQL) StoreShipment(ctx context.Context, shipment domain.Shipment) (*domain.Shipment, error) {
	var row PgShipment
	row.FromDomain(shipment)

	var result PgShipment
	if _, err := p.Builder.Insert(shipmentsTable).
		Rows(row).
		Returning(&PgShipment{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store shipment into pg: %w", mapError(err))
	}

	return result.ToDomain(), nil
}

// UpdateShipment renames a shipment and stamps updated_at, returning the
// updated row or nil when no shipment has the given ID.
func (p *PgSQL) UpdateShipment(ctx context.Context,
	id domain.ShipmentID,
	updates storage.ShipmentUpdates) (*domain.Shipment, error) {
	var row PgShipment
	found, err := p.Builder.Update(shipmentsTable).
		Set(goqu.Record{
			"shipment_number": updates.Number,
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgShipment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update shipment in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteShipments(ctx context.Context, ids ...domain.ShipmentID) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := p.Builder.Delete(shipmentsTable).
		Where(goqu.I("id").In(uuids(ids))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete shipments in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) ShipmentByID(ctx context.Context, id domain.ShipmentID) (*domain.Shipment, error) {
	return p.shipmentWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) ShipmentByNumber(ctx context.Context, number string) (*domain.Shipment, error) {
	return p.shipmentWhere(ctx, goqu.I("shipment_number").Eq(number))
}

func (p *PgSQL) shipmentWhere(ctx context.Context, where goqu.Expression) (*domain.Shipment, error) {
	var row PgShipment
	found, err := p.Builder.From(shipmentsTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch shipment from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ShipmentExists(ctx context.Context, number string) (bool, error) {
	var id uuid.UUID
	found, err := p.Builder.From(shipmentsTable).
		Select("id").
		Where(goqu.I("shipment_number").Eq(number)).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return false, fmt.Errorf("could not check shipment existence in pg: %w", err)
	}

	return found, nil
}

func (p *PgSQL) AllShipments(ctx context.Context) ([]domain.Shipment, error) {
	var rows []PgShipment
	if err := p.Builder.From(shipmentsTable).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch shipments from pg: %w", err)
	}

	return pgShipmentsToDomain(rows), nil
}

// ShipmentsPage returns a window of shipments ordered by insertion sequence
// so consecutive pages do not overlap.
func (p *PgSQL) ShipmentsPage(ctx context.Context, limit, offset uint) ([]domain.Shipment, error) {
	var rows []PgShipment
	if err := p.Builder.From(shipmentsTable).
		Order(goqu.I("seq").Asc()).
		Limit(limit).
		Offset(offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch shipments page from pg: %w", err)
	}

	return pgShipmentsToDomain(rows), nil
}

func (p *PgSQL) ShipmentCount(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(shipmentsTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count shipments in pg: %w", err)
	}

	return count, nil
}
