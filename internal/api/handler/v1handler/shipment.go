package v1handler

import (
	"context"
	"fmt"
	"net/url"
	"shipments/internal/api/specs/v1specs"
	"shipments/internal/shipping"
	"shipments/pkg/domain"
	"shipments/pkg/serrors"
	"time"

	"github.com/go-faster/jx"
)

// CreateShipmentDelivery adds a delivery to a shipment, creating the
// shipment on first use, and echoes the accepted request.
func (h *Handler) CreateShipmentDelivery(
	ctx context.Context,
	req *v1specs.CreateShipmentDeliveryRequest,
) (*v1specs.CreateShipmentDeliveryCreatedHeaders, error) {
	delivery, err := V1SpecsToDeliveryInput(v1specs.DeliveryInput{
		DeliveryNumber: req.DeliveryNumber,
		DeliveryType:   req.DeliveryType,
		ContainerItems: req.ContainerItems,
		BulkItems:      req.BulkItems,
	})
	if err != nil {
		return nil, err
	}

	in := shipping.CreateRequest{
		ShipmentNumber: req.ShipmentNumber,
		Delivery:       delivery,
	}
	if err := h.deps.Shipping.CreateShipmentDelivery(ctx, in); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.CreateShipmentDeliveryCreatedHeaders{
		Location: PathPrefix + "/delivery/" + url.PathEscape(delivery.Number),
		Response: CreateRequestToV1Specs(in),
	}, nil
}

// GetByShipmentNumber returns a shipment with all its deliveries.
func (h *Handler) GetByShipmentNumber(
	ctx context.Context,
	params v1specs.GetByShipmentNumberParams,
) (*v1specs.Shipment, error) {
	view, err := h.deps.Shipping.ByShipmentNumber(ctx, params.ShipmentNumber)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ShipmentViewToV1Specs(view), nil
}

// GetByDeliveryNumber returns the shipment owning a delivery, siblings included.
func (h *Handler) GetByDeliveryNumber(
	ctx context.Context,
	params v1specs.GetByDeliveryNumberParams,
) (*v1specs.Shipment, error) {
	view, err := h.deps.Shipping.ByDeliveryNumber(ctx, params.DeliveryNumber)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ShipmentViewToV1Specs(view), nil
}

func (h *Handler) ListShipments(ctx context.Context) (v1specs.Shipments, error) {
	views, err := h.deps.Shipping.AllShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list shipments: %w", err)
	}

	res := make(v1specs.Shipments, len(views))
	for i := range views {
		res[i] = *ShipmentViewToV1Specs(&views[i])
	}

	return res, nil
}

// ListShipmentsPage returns one page of shipments. page defaults to 1 and
// an absent pageSize selects the configured default.
func (h *Handler) ListShipmentsPage(
	ctx context.Context,
	params v1specs.ListShipmentsPageParams,
) (*v1specs.ShipmentPage, error) {
	page := params.Page.Or(1)
	pageSize := params.PageSize.Or(0)
	if page < 1 || pageSize < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "page must be positive and pageSize non-negative")
	}

	res, err := h.deps.Shipping.ShipmentsPage(ctx, uint(page), uint(pageSize))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return PageToV1Specs(res), nil
}

// UpdateShipment renames a shipment and optionally replaces its deliveries.
func (h *Handler) UpdateShipment(
	ctx context.Context,
	req *v1specs.UpdateShipmentRequest,
	params v1specs.UpdateShipmentParams,
) error {
	in := shipping.UpdateRequest{ShipmentNumber: req.ShipmentNumber}
	if wire, ok := req.Deliveries.Get(); ok {
		deliveries := make([]shipping.DeliveryInput, len(wire))
		for i, d := range wire {
			delivery, err := V1SpecsToDeliveryInput(d)
			if err != nil {
				return err
			}
			deliveries[i] = delivery
		}
		in.Deliveries = &deliveries
	}

	return h.deps.Shipping.UpdateShipment(ctx, params.ShipmentNumber, in) //nolint: wrapcheck
}

// DeleteShipment removes a shipment with its deliveries and items.
func (h *Handler) DeleteShipment(ctx context.Context, params v1specs.DeleteShipmentParams) error {
	return h.deps.Shipping.DeleteShipment(ctx, params.ShipmentNumber) //nolint: wrapcheck
}

// parseDeliveryType accepts the type names in any letter case as well as the
// 0/1 ordinals sent by older clients.
func parseDeliveryType(raw jx.Raw) (domain.DeliveryType, error) {
	d := jx.DecodeBytes(raw)
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "deliveryType must be a string")
		}
		t, err := domain.ParseDeliveryType(s)
		if err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "unknown deliveryType %q", s)
		}

		return t, nil
	case jx.Number:
		n, err := d.Int()
		if err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "deliveryType must be 0 or 1")
		}
		switch n {
		case 0:
			return domain.DeliveryTypeContainer, nil
		case 1:
			return domain.DeliveryTypeBulk, nil
		default:
			return "", serrors.With(serrors.ErrBadRequest, "unknown deliveryType %d", n)
		}
	default:
		return "", serrors.With(serrors.ErrBadRequest, "deliveryType must be a string")
	}
}

// V1SpecsToDeliveryInput converts a wire delivery into the engine's input. A
// non-empty item list of the other type is rejected here, the matching list
// is handed on as is and validated by the engine.
func V1SpecsToDeliveryInput(d v1specs.DeliveryInput) (shipping.DeliveryInput, error) {
	in := shipping.DeliveryInput{Number: d.DeliveryNumber}

	t, err := parseDeliveryType(d.DeliveryType)
	if err != nil {
		return in, err
	}
	in.Type = t

	switch t {
	case domain.DeliveryTypeContainer:
		if len(d.BulkItems) > 0 {
			return in, serrors.With(serrors.ErrBadRequest,
				"delivery %q of type %s must not carry bulkItems", d.DeliveryNumber, t)
		}
		if d.ContainerItems != nil {
			items := make(domain.ContainerItems, len(d.ContainerItems))
			for i, item := range d.ContainerItems {
				items[i] = domain.ContainerItem{
					MaterialNumber:  item.MaterialNumber,
					SerialNumber:    item.SerialNumber,
					ConnectionLabel: item.ConnectionLabel.Or(""),
				}
			}
			in.Items = items
		}
	case domain.DeliveryTypeBulk:
		if len(d.ContainerItems) > 0 {
			return in, serrors.With(serrors.ErrBadRequest,
				"delivery %q of type %s must not carry containerItems", d.DeliveryNumber, t)
		}
		if d.BulkItems != nil {
			items := make(domain.BulkItems, len(d.BulkItems))
			for i, item := range d.BulkItems {
				items[i] = domain.BulkItem{
					MaterialNumber:  item.MaterialNumber,
					EvdSealNumber:   item.EvdSealNumber,
					ConnectionLabel: item.ConnectionLabel.Or(""),
				}
			}
			in.Items = items
		}
	}

	return in, nil
}

func rawString(s string) jx.Raw {
	e := new(jx.Encoder)
	e.Str(s)

	return jx.Raw(e.Bytes())
}

// CreateRequestToV1Specs echoes an accepted create request with its
// delivery type normalised.
func CreateRequestToV1Specs(req shipping.CreateRequest) v1specs.CreateShipmentDeliveryRequest {
	res := v1specs.CreateShipmentDeliveryRequest{
		ShipmentNumber: req.ShipmentNumber,
		DeliveryNumber: req.Delivery.Number,
		DeliveryType:   rawString(string(req.Delivery.Type)),
	}

	switch items := req.Delivery.Items.(type) {
	case domain.ContainerItems:
		res.ContainerItems = make([]v1specs.ContainerItem, len(items))
		for i, item := range items {
			res.ContainerItems[i] = v1specs.ContainerItem{
				MaterialNumber:  item.MaterialNumber,
				SerialNumber:    item.SerialNumber,
				ConnectionLabel: v1specs.NewOptString(item.ConnectionLabel),
			}
		}
	case domain.BulkItems:
		res.BulkItems = make([]v1specs.BulkItem, len(items))
		for i, item := range items {
			res.BulkItems[i] = v1specs.BulkItem{
				MaterialNumber:  item.MaterialNumber,
				EvdSealNumber:   item.EvdSealNumber,
				ConnectionLabel: v1specs.NewOptString(item.ConnectionLabel),
			}
		}
	}

	return res
}

func optTime(t time.Time) v1specs.OptDateTime {
	if t.IsZero() {
		return v1specs.OptDateTime{}
	}

	return v1specs.NewOptDateTime(t.UTC())
}

// DeliveryViewToV1Specs converts a delivery. Only the item list matching the
// delivery's type is set, empty but present when there are no items.
func DeliveryViewToV1Specs(d shipping.DeliveryView) v1specs.Delivery {
	res := v1specs.Delivery{
		DeliveryNumber: d.DeliveryNumber,
		DeliveryType:   v1specs.DeliveryType(d.DeliveryType),
		CreatedAt:      d.CreatedAt.UTC(),
	}

	switch d.DeliveryType {
	case domain.DeliveryTypeContainer:
		res.ContainerItems = make([]v1specs.ContainerItem, len(d.ContainerItems))
		for i, item := range d.ContainerItems {
			res.ContainerItems[i] = v1specs.ContainerItem{
				MaterialNumber:  item.MaterialNumber,
				SerialNumber:    item.SerialNumber,
				ConnectionLabel: v1specs.NewOptString(item.ConnectionLabel),
				CreatedAt:       optTime(item.CreatedAt),
			}
		}
	case domain.DeliveryTypeBulk:
		res.BulkItems = make([]v1specs.BulkItem, len(d.BulkItems))
		for i, item := range d.BulkItems {
			res.BulkItems[i] = v1specs.BulkItem{
				MaterialNumber:  item.MaterialNumber,
				EvdSealNumber:   item.EvdSealNumber,
				ConnectionLabel: v1specs.NewOptString(item.ConnectionLabel),
				CreatedAt:       optTime(item.CreatedAt),
			}
		}
	}

	return res
}

func ShipmentViewToV1Specs(v *shipping.ShipmentView) *v1specs.Shipment {
	res := &v1specs.Shipment{
		ShipmentNumber:    v.ShipmentNumber,
		ShipmentCreatedAt: v.CreatedAt.UTC(),
		Deliveries:        make([]v1specs.Delivery, len(v.Deliveries)),
	}
	for i, d := range v.Deliveries {
		res.Deliveries[i] = DeliveryViewToV1Specs(d)
	}

	return res
}

func PageToV1Specs(p *shipping.ShipmentPage) *v1specs.ShipmentPage {
	res := &v1specs.ShipmentPage{
		Items:       make([]v1specs.Shipment, len(p.Shipments)),
		Page:        int(p.Page),
		PageSize:    int(p.PageSize),
		TotalCount:  p.TotalCount,
		TotalPages:  int(p.TotalPages),
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
	for i := range p.Shipments {
		res.Items[i] = *ShipmentViewToV1Specs(&p.Shipments[i])
	}

	return res
}
