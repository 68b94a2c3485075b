package shipping

import (
	"context"
	"shipments/internal/config"
	"shipments/pkg/domain"
	"time"
)

//go:generate mockgen -package mockshipping -source=interface.go -destination=mock/mockshipping.go *
type Service interface {
	// CreateShipmentDelivery adds a new delivery with its items to the
	// shipment holding req.ShipmentNumber, creating that shipment first when
	// it does not exist yet. An existing delivery is never modified.
	CreateShipmentDelivery(ctx context.Context, req CreateRequest) error
	// ByShipmentNumber returns the full subtree of a shipment.
	ByShipmentNumber(ctx context.Context, shipmentNumber string) (*ShipmentView, error)
	// ByDeliveryNumber returns the full subtree of the shipment owning the
	// delivery, siblings included.
	ByDeliveryNumber(ctx context.Context, deliveryNumber string) (*ShipmentView, error)
	AllShipments(ctx context.Context) ([]ShipmentView, error)
	// ShipmentsPage returns one page of shipments. page starts at 1 and a
	// zero pageSize selects the configured default.
	ShipmentsPage(ctx context.Context, page, pageSize uint) (*ShipmentPage, error)
	// UpdateShipment renames a shipment and, when req.Deliveries is set,
	// replaces its whole delivery subtree.
	UpdateShipment(ctx context.Context, currentShipmentNumber string, req UpdateRequest) error
	// DeleteShipment removes a shipment together with its deliveries and items.
	DeleteShipment(ctx context.Context, shipmentNumber string) error
}

// DeliveryInput describes a delivery to be written. Items must carry the
// item set matching Type.
type DeliveryInput struct {
	Number string
	Type   domain.DeliveryType
	Items  domain.DeliveryItems
}

func (d DeliveryInput) toDomain(shipmentID domain.ShipmentID) domain.Delivery {
	return domain.Delivery{
		ShipmentID: shipmentID,
		Number:     d.Number,
		Type:       d.Type,
		Items:      d.Items,
	}
}

type CreateRequest struct {
	ShipmentNumber string
	Delivery       DeliveryInput
}

// UpdateRequest carries the new shipment number and an optional replacement
// delivery list. A nil Deliveries leaves the existing deliveries untouched;
// a non-nil one, even empty, replaces all of them.
type UpdateRequest struct {
	ShipmentNumber string
	Deliveries     *[]DeliveryInput
}

// ShipmentView is the read model of a shipment subtree.
type ShipmentView struct {
	ShipmentNumber string
	CreatedAt      time.Time
	Deliveries     []DeliveryView
}

// DeliveryView holds exactly one non-nil item list, the one matching
// DeliveryType.
type DeliveryView struct {
	DeliveryNumber string
	DeliveryType   domain.DeliveryType
	CreatedAt      time.Time
	ContainerItems []ContainerItemView
	BulkItems      []BulkItemView
}

type ContainerItemView struct {
	MaterialNumber  string
	SerialNumber    string
	ConnectionLabel string
	CreatedAt       time.Time
}

type BulkItemView struct {
	MaterialNumber  string
	EvdSealNumber   string
	ConnectionLabel string
	CreatedAt       time.Time
}

// ShipmentPage is one page of the shipment listing.
type ShipmentPage struct {
	Shipments   []ShipmentView
	Page        uint
	PageSize    uint
	TotalCount  int64
	TotalPages  uint
	HasNext     bool
	HasPrevious bool
}

// Options configure the paginated listing.
type Options struct {
	// DefaultPageSize is used when a caller does not pick a page size.
	DefaultPageSize uint
	// MaxPageSize is the largest page size a caller may request.
	MaxPageSize uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	}
}
