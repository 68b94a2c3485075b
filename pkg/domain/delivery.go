package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeliveryID uniquely identifies a delivery.
type DeliveryID uuid.UUID

// String returns the canonical uuid representation of the ID.
func (id DeliveryID) String() string { return uuid.UUID(id).String() }

// DeliveryType discriminates which kind of items a delivery carries. It is
// set when the delivery is created and never changes afterwards.
type DeliveryType string

const (
	// DeliveryTypeContainer deliveries carry container items identified by
	// material and serial number.
	DeliveryTypeContainer DeliveryType = "CONTAINER"
	// DeliveryTypeBulk deliveries carry bulk items identified by material and
	// EVD seal number.
	DeliveryTypeBulk DeliveryType = "BULK"
)

// Valid reports whether t is one of the known delivery types.
func (t DeliveryType) Valid() bool {
	return t == DeliveryTypeContainer || t == DeliveryTypeBulk
}

// ParseDeliveryType accepts the type names in any letter case.
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch {
	case strings.EqualFold(s, string(DeliveryTypeContainer)):
		return DeliveryTypeContainer, nil
	case strings.EqualFold(s, string(DeliveryTypeBulk)):
		return DeliveryTypeBulk, nil
	default:
		return "", fmt.Errorf("unknown delivery type %q", s)
	}
}

// Delivery belongs to exactly one shipment and owns the items of its type.
type Delivery struct {
	// ID is the surrogate identifier assigned by the store.
	ID DeliveryID
	// ShipmentID references the owning shipment.
	ShipmentID ShipmentID
	// Number is the globally unique business key of the delivery.
	Number string
	// Type decides which item set the delivery owns.
	Type DeliveryType

	CreatedAt time.Time
	UpdatedAt time.Time

	// Items holds the delivery's items. Its concrete type always matches Type
	// once the delivery has been loaded with items; it is nil otherwise.
	Items DeliveryItems
}
