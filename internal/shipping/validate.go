package shipping

import (
	"fmt"
	"shipments/pkg/domain"
	"shipments/pkg/serrors"
	"strings"
	"unicode/utf8"
)

// Column limits of the persisted layout.
const (
	maxNumberLength = 50
	maxCodeLength   = 50
	maxLabelLength  = 100
)

func validateRequired(field, value string, limit int) error {
	if strings.TrimSpace(value) == "" {
		return serrors.With(serrors.ErrBadRequest, "%s must not be blank", field)
	}

	return validateLength(field, value, limit)
}

// validateLength also rejects text the database cannot store: invalid UTF-8
// and NUL characters.
func validateLength(field, value string, limit int) error {
	if !utf8.ValidString(value) || strings.ContainsRune(value, 0) {
		return serrors.With(serrors.ErrBadRequest, "%s must be valid UTF-8 without NUL characters", field)
	}
	if utf8.RuneCountInString(value) > limit {
		return serrors.With(serrors.ErrBadRequest, "%s must be at most %d characters", field, limit)
	}

	return nil
}

func validateShipmentNumber(number string) error {
	return validateRequired("shipment number", number, maxNumberLength)
}

// validateDelivery checks that d has a number, a known type and a non-empty
// item set of that type whose required fields are set and whose composite
// keys do not repeat.
func validateDelivery(d DeliveryInput) error {
	if err := validateRequired("delivery number", d.Number, maxNumberLength); err != nil {
		return err
	}
	if !d.Type.Valid() {
		return serrors.With(serrors.ErrBadRequest, "delivery %q has unknown type %q", d.Number, d.Type)
	}
	if d.Items == nil {
		return serrors.With(serrors.ErrBadRequest, "delivery %q of type %s has no items", d.Number, d.Type)
	}
	if d.Items.Type() != d.Type {
		return serrors.With(serrors.ErrBadRequest,
			"delivery %q of type %s carries %s items", d.Number, d.Type, d.Items.Type())
	}
	if d.Items.Len() == 0 {
		return serrors.With(serrors.ErrBadRequest, "delivery %q must have at least one item", d.Number)
	}

	switch items := d.Items.(type) {
	case domain.ContainerItems:
		return validateContainerItems(d.Number, items)
	case domain.BulkItems:
		return validateBulkItems(d.Number, items)
	}

	return nil
}

func validateContainerItems(deliveryNumber string, items domain.ContainerItems) error {
	type key struct{ material, serial string }
	seen := make(map[key]struct{}, len(items))

	for i, item := range items {
		if err := validateItem(deliveryNumber, i,
			"material number", item.MaterialNumber,
			"serial number", item.SerialNumber,
			item.ConnectionLabel); err != nil {
			return err
		}

		k := key{item.MaterialNumber, item.SerialNumber}
		if _, ok := seen[k]; ok {
			return serrors.With(serrors.ErrConflict,
				"delivery %q repeats container item %q/%q", deliveryNumber, k.material, k.serial)
		}
		seen[k] = struct{}{}
	}

	return nil
}

func validateBulkItems(deliveryNumber string, items domain.BulkItems) error {
	type key struct{ material, seal string }
	seen := make(map[key]struct{}, len(items))

	for i, item := range items {
		if err := validateItem(deliveryNumber, i,
			"material number", item.MaterialNumber,
			"evd seal number", item.EvdSealNumber,
			item.ConnectionLabel); err != nil {
			return err
		}

		k := key{item.MaterialNumber, item.EvdSealNumber}
		if _, ok := seen[k]; ok {
			return serrors.With(serrors.ErrConflict,
				"delivery %q repeats bulk item %q/%q", deliveryNumber, k.material, k.seal)
		}
		seen[k] = struct{}{}
	}

	return nil
}

func validateItem(deliveryNumber string, index int,
	materialField, material,
	codeField, code,
	label string) error {
	prefix := fmt.Sprintf("item %d of delivery %q", index, deliveryNumber)

	if err := validateRequired(prefix+": "+materialField, material, maxCodeLength); err != nil {
		return err
	}
	if err := validateRequired(prefix+": "+codeField, code, maxCodeLength); err != nil {
		return err
	}

	return validateLength(prefix+": connection label", label, maxLabelLength)
}
