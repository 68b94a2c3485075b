package shipping

import "shipments/pkg/domain"

// Project maps a loaded shipment subtree to its read model. Each delivery
// carries only the item list matching its type.
func Project(shipment domain.Shipment) ShipmentView {
	view := ShipmentView{
		ShipmentNumber: shipment.Number,
		CreatedAt:      shipment.CreatedAt,
		Deliveries:     make([]DeliveryView, 0, len(shipment.Deliveries)),
	}

	for _, d := range shipment.Deliveries {
		view.Deliveries = append(view.Deliveries, projectDelivery(d))
	}

	return view
}

func projectDelivery(d domain.Delivery) DeliveryView {
	view := DeliveryView{
		DeliveryNumber: d.Number,
		DeliveryType:   d.Type,
		CreatedAt:      d.CreatedAt,
	}

	switch d.Type {
	case domain.DeliveryTypeContainer:
		items, _ := d.Items.(domain.ContainerItems)
		view.ContainerItems = make([]ContainerItemView, 0, len(items))
		for _, item := range items {
			view.ContainerItems = append(view.ContainerItems, ContainerItemView{
				MaterialNumber:  item.MaterialNumber,
				SerialNumber:    item.SerialNumber,
				ConnectionLabel: item.ConnectionLabel,
				CreatedAt:       item.CreatedAt,
			})
		}
	case domain.DeliveryTypeBulk:
		items, _ := d.Items.(domain.BulkItems)
		view.BulkItems = make([]BulkItemView, 0, len(items))
		for _, item := range items {
			view.BulkItems = append(view.BulkItems, BulkItemView{
				MaterialNumber:  item.MaterialNumber,
				EvdSealNumber:   item.EvdSealNumber,
				ConnectionLabel: item.ConnectionLabel,
				CreatedAt:       item.CreatedAt,
			})
		}
	}

	return view
}

func projectAll(shipments []domain.Shipment) []ShipmentView {
	out := make([]ShipmentView, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, Project(s))
	}

	return out
}
