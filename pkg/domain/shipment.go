package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentID uniquely identifies a shipment.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ShipmentID uuid.UUID

// String returns the canonical uuid representation of the ID.
func (id ShipmentID) String() string { return uuid.UUID(id).String() }

// Shipment is the aggregate root. It is identified by a unique business
// number and exclusively owns its deliveries.
type Shipment struct {
	// ID is the surrogate identifier assigned by the store.
	ID ShipmentID
	// Number is the unique business key of the shipment.
	Number string

	// CreatedAt is the time the shipment was first persisted.
	CreatedAt time.Time
	// UpdatedAt is the time of the last rename; zero value means never updated.
	UpdatedAt time.Time

	// Deliveries is only populated by subtree loads.
	Deliveries []Delivery
}
