package postgres

import (
	"context"
	"fmt"
	"shipments/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	deliveriesTable = "deliveries"
)

func (p *PgSQL) StoreDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error) {
	var row PgDelivery
	row.FromDomain(delivery)

	var result PgDelivery
	if _, err := p.Builder.Insert(deliveriesTable).
		Rows(row).
		Returning(&PgDelivery{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store delivery into pg: %w", mapError(err))
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) DeleteDeliveries(ctx context.Context, ids ...domain.DeliveryID) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := p.Builder.Delete(deliveriesTable).
		Where(goqu.I("id").In(uuids(ids))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete deliveries in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeliveryByNumber(ctx context.Context, number string) (*domain.Delivery, error) {
	var row PgDelivery
	found, err := p.Builder.From(deliveriesTable).
		Where(goqu.I("delivery_number").Eq(number)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch delivery by number: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeliveryExists(ctx context.Context, number string) (bool, error) {
	var id uuid.UUID
	found, err := p.Builder.From(deliveriesTable).
		Select("id").
		Where(goqu.I("delivery_number").Eq(number)).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return false, fmt.Errorf("could not check delivery existence in pg: %w", err)
	}

	return found, nil
}

// DeliveriesByShipmentID returns the deliveries of the given shipments in
// insertion order.
func (p *PgSQL) DeliveriesByShipmentID(ctx context.Context,
	shipmentIDs ...domain.ShipmentID) ([]domain.Delivery, error) {
	if len(shipmentIDs) == 0 {
		return nil, nil
	}

	var rows []PgDelivery
	if err := p.Builder.From(deliveriesTable).
		Where(goqu.I("shipment_id").In(uuids(shipmentIDs))).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch deliveries by shipment from pg: %w", err)
	}

	return pgDeliveriesToDomain(rows), nil
}
