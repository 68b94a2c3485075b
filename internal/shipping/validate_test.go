package shipping

import (
	"shipments/pkg/domain"
	"shipments/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDelivery(t *testing.T) {
	long := strings.Repeat("x", maxNumberLength+1)
	container := func(items ...domain.ContainerItem) DeliveryInput {
		return DeliveryInput{Number: "DEL-1", Type: domain.DeliveryTypeContainer, Items: domain.ContainerItems(items)}
	}

	tests := []struct {
		name  string
		input DeliveryInput
		kind  serrors.Kind
	}{
		{
			name:  "valid container",
			input: container(domain.ContainerItem{MaterialNumber: "M", SerialNumber: "S", ConnectionLabel: "L"}),
		},
		{
			name: "valid bulk",
			input: DeliveryInput{Number: "DEL-1", Type: domain.DeliveryTypeBulk,
				Items: domain.BulkItems{{MaterialNumber: "M", EvdSealNumber: "E"}}},
		},
		{
			name:  "blank number",
			input: DeliveryInput{Number: "  ", Type: domain.DeliveryTypeBulk},
			kind:  serrors.ErrBadRequest,
		},
		{
			name:  "number too long",
			input: DeliveryInput{Number: long, Type: domain.DeliveryTypeBulk},
			kind:  serrors.ErrBadRequest,
		},
		{
			name:  "unknown type",
			input: DeliveryInput{Number: "DEL-1", Type: "PALLET", Items: domain.BulkItems{{}}},
			kind:  serrors.ErrBadRequest,
		},
		{
			name:  "blank material",
			input: container(domain.ContainerItem{SerialNumber: "S"}),
			kind:  serrors.ErrBadRequest,
		},
		{
			name: "blank seal",
			input: DeliveryInput{Number: "DEL-1", Type: domain.DeliveryTypeBulk,
				Items: domain.BulkItems{{MaterialNumber: "M"}}},
			kind: serrors.ErrBadRequest,
		},
		{
			name: "label too long",
			input: container(domain.ContainerItem{MaterialNumber: "M", SerialNumber: "S",
				ConnectionLabel: strings.Repeat("l", maxLabelLength+1)}),
			kind: serrors.ErrBadRequest,
		},
		{
			name:  "nul in serial",
			input: container(domain.ContainerItem{MaterialNumber: "M", SerialNumber: "S\x00"}),
			kind:  serrors.ErrBadRequest,
		},
		{
			name: "invalid utf-8 in label",
			input: container(domain.ContainerItem{MaterialNumber: "M", SerialNumber: "S",
				ConnectionLabel: "L\xff"}),
			kind: serrors.ErrBadRequest,
		},
		{
			name: "same material different serial",
			input: container(
				domain.ContainerItem{MaterialNumber: "M", SerialNumber: "S1"},
				domain.ContainerItem{MaterialNumber: "M", SerialNumber: "S2"},
			),
		},
		{
			name: "repeated bulk key",
			input: DeliveryInput{Number: "DEL-1", Type: domain.DeliveryTypeBulk, Items: domain.BulkItems{
				{MaterialNumber: "M", EvdSealNumber: "E"},
				{MaterialNumber: "M", EvdSealNumber: "E", ConnectionLabel: "other"},
			}},
			kind: serrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDelivery(tt.input)
			if tt.kind == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestValidateShipmentNumber(t *testing.T) {
	require.NoError(t, validateShipmentNumber("SHIP-1"))
	require.NoError(t, validateShipmentNumber(strings.Repeat("é", maxNumberLength)))
	require.ErrorIs(t, validateShipmentNumber(""), serrors.ErrBadRequest)
	require.ErrorIs(t, validateShipmentNumber(strings.Repeat("9", maxNumberLength+1)), serrors.ErrBadRequest)
	require.ErrorIs(t, validateShipmentNumber("S\x00"), serrors.ErrBadRequest)
	require.ErrorIs(t, validateShipmentNumber("S\xc3"), serrors.ErrBadRequest)
}
