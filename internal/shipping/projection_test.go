package shipping_test

import (
	"shipments/internal/shipping"
	"shipments/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	view := shipping.Project(domain.Shipment{
		Number:    "SHIP-1",
		CreatedAt: created,
		Deliveries: []domain.Delivery{
			{
				Number:    "DEL-1",
				Type:      domain.DeliveryTypeContainer,
				CreatedAt: created,
				Items: domain.ContainerItems{
					{MaterialNumber: "M1", SerialNumber: "S1", ConnectionLabel: "L1", CreatedAt: created},
				},
			},
			{
				Number: "DEL-2",
				Type:   domain.DeliveryTypeBulk,
				Items:  domain.BulkItems{{MaterialNumber: "M2", EvdSealNumber: "E2"}},
			},
			{
				Number: "DEL-3",
				Type:   domain.DeliveryTypeBulk,
				Items:  domain.BulkItems(nil),
			},
		},
	})

	require.Equal(t, shipping.ShipmentView{
		ShipmentNumber: "SHIP-1",
		CreatedAt:      created,
		Deliveries: []shipping.DeliveryView{
			{
				DeliveryNumber: "DEL-1",
				DeliveryType:   domain.DeliveryTypeContainer,
				CreatedAt:      created,
				ContainerItems: []shipping.ContainerItemView{
					{MaterialNumber: "M1", SerialNumber: "S1", ConnectionLabel: "L1", CreatedAt: created},
				},
			},
			{
				DeliveryNumber: "DEL-2",
				DeliveryType:   domain.DeliveryTypeBulk,
				BulkItems:      []shipping.BulkItemView{{MaterialNumber: "M2", EvdSealNumber: "E2"}},
			},
			{
				DeliveryNumber: "DEL-3",
				DeliveryType:   domain.DeliveryTypeBulk,
				BulkItems:      []shipping.BulkItemView{},
			},
		},
	}, view)
}

func TestProject_NoDeliveries(t *testing.T) {
	view := shipping.Project(domain.Shipment{Number: "SHIP-1"})
	require.NotNil(t, view.Deliveries)
	require.Empty(t, view.Deliveries)
}
