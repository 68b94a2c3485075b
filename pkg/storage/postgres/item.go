package postgres

import (
	"context"
	"fmt"
	"shipments/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	containerItemsTable = "container_items"
	bulkItemsTable      = "bulk_items"
)

func (p *PgSQL) StoreContainerItems(ctx context.Context,
	items ...domain.ContainerItem) ([]domain.ContainerItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	rows := make([]PgContainerItem, len(items))
	for i := range items {
		rows[i].FromDomain(items[i])
	}

	var result []PgContainerItem
	if err := p.Builder.Insert(containerItemsTable).
		Rows(rows).
		Returning(&PgContainerItem{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store container items into pg: %w", mapError(err))
	}

	out := make([]domain.ContainerItem, len(result))
	for i := range result {
		out[i] = result[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) StoreBulkItems(ctx context.Context, items ...domain.BulkItem) ([]domain.BulkItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	rows := make([]PgBulkItem, len(items))
	for i := range items {
		rows[i].FromDomain(items[i])
	}

	var result []PgBulkItem
	if err := p.Builder.Insert(bulkItemsTable).
		Rows(rows).
		Returning(&PgBulkItem{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store bulk items into pg: %w", mapError(err))
	}

	out := make([]domain.BulkItem, len(result))
	for i := range result {
		out[i] = result[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) ContainerItemsByDeliveryID(ctx context.Context,
	deliveryIDs ...domain.DeliveryID) ([]domain.ContainerItem, error) {
	if len(deliveryIDs) == 0 {
		return nil, nil
	}

	var rows []PgContainerItem
	if err := p.Builder.From(containerItemsTable).
		Where(goqu.I("delivery_id").In(uuids(deliveryIDs))).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch container items from pg: %w", err)
	}

	out := make([]domain.ContainerItem, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) BulkItemsByDeliveryID(ctx context.Context,
	deliveryIDs ...domain.DeliveryID) ([]domain.BulkItem, error) {
	if len(deliveryIDs) == 0 {
		return nil, nil
	}

	var rows []PgBulkItem
	if err := p.Builder.From(bulkItemsTable).
		Where(goqu.I("delivery_id").In(uuids(deliveryIDs))).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch bulk items from pg: %w", err)
	}

	out := make([]domain.BulkItem, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) DeleteContainerItemsByDeliveryID(ctx context.Context, deliveryIDs ...domain.DeliveryID) error {
	return p.deleteItems(ctx, containerItemsTable, deliveryIDs)
}

func (p *PgSQL) DeleteBulkItemsByDeliveryID(ctx context.Context, deliveryIDs ...domain.DeliveryID) error {
	return p.deleteItems(ctx, bulkItemsTable, deliveryIDs)
}

func (p *PgSQL) deleteItems(ctx context.Context, table string, deliveryIDs []domain.DeliveryID) error {
	if len(deliveryIDs) == 0 {
		return nil
	}

	_, err := p.Builder.Delete(table).
		Where(goqu.I("delivery_id").In(uuids(deliveryIDs))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete items from %s in pg: %w", table, err)
	}

	return nil
}
