package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemID identifies a container or bulk item.
type ItemID uuid.UUID

// DeliveryItems is the set of items owned by a delivery. It is implemented
// only by ContainerItems and BulkItems, so a delivery can never hold both
// kinds at once.
type DeliveryItems interface {
	// Type returns the delivery type this item set belongs to.
	Type() DeliveryType
	// Len returns the number of items in the set.
	Len() int

	deliveryItems()
}

// ContainerItem is a unit identified by material and serial number within a
// delivery. (DeliveryID, MaterialNumber, SerialNumber) is unique.
type ContainerItem struct {
	ID         ItemID
	DeliveryID DeliveryID

	MaterialNumber  string
	SerialNumber    string
	ConnectionLabel string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BulkItem is a unit identified by material and EVD seal number within a
// delivery. (DeliveryID, MaterialNumber, EvdSealNumber) is unique.
type BulkItem struct {
	ID         ItemID
	DeliveryID DeliveryID

	MaterialNumber  string
	EvdSealNumber   string
	ConnectionLabel string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContainerItems is the item set of a container delivery.
type ContainerItems []ContainerItem

func (ContainerItems) Type() DeliveryType { return DeliveryTypeContainer }
func (c ContainerItems) Len() int { return len(c) }
func (ContainerItems) deliveryItems() {}

// BulkItems is the item set of a bulk delivery.
type BulkItems []BulkItem

func (BulkItems) Type() DeliveryType { return DeliveryTypeBulk }
func (b BulkItems) Len() int { return len(b) }
func (BulkItems) deliveryItems() {}
