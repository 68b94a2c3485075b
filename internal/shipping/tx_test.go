package shipping_test

import (
	"context"
	"errors"
	"shipments/internal/shipping"
	"shipments/pkg/domain"
	"shipments/pkg/serrors"
	"shipments/pkg/storage"
	"testing"

	mockstorage "shipments/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, shipping.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := shipping.New(st, shipping.Options{DefaultPageSize: 20, MaxPageSize: 200})

	return ctrl, st, s
}

// expectWithTx wires Storage.WithTx to run the callback against a
// MockAllStorage and records the callback's result in *cbErr.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	cbErr *error,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			err := cb(tx)
			if cbErr != nil {
				*cbErr = err
			}

			return err
		},
	)
}

func validCreate() shipping.CreateRequest {
	return shipping.CreateRequest{
		ShipmentNumber: "SHIP-1",
		Delivery: shipping.DeliveryInput{
			Number: "DEL-1",
			Type:   domain.DeliveryTypeContainer,
			Items:  domain.ContainerItems{{MaterialNumber: "M1", SerialNumber: "S1"}},
		},
	}
}

func TestService_Create_ResolvesParentBeforeChildren(t *testing.T) {
	ctrl, st, s := newTestService(t)

	shipment := domain.Shipment{ID: domain.ShipmentID(uuid.New()), Number: "SHIP-1"}
	delivery := domain.Delivery{ID: domain.DeliveryID(uuid.New()), ShipmentID: shipment.ID, Number: "DEL-1",
		Type: domain.DeliveryTypeContainer}

	var cbErr error
	expectWithTx(t, ctrl, st, &cbErr, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().ShipmentByNumber(gomock.Any(), "SHIP-1").Return(nil, nil),
			tx.EXPECT().StoreShipment(gomock.Any(), domain.Shipment{Number: "SHIP-1"}).Return(&shipment, nil),
			tx.EXPECT().DeliveryExists(gomock.Any(), "DEL-1").Return(false, nil),
			tx.EXPECT().StoreDelivery(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, d domain.Delivery) (*domain.Delivery, error) {
					require.Equal(t, shipment.ID, d.ShipmentID)

					return &delivery, nil
				}),
			tx.EXPECT().StoreContainerItems(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, items ...domain.ContainerItem) ([]domain.ContainerItem, error) {
					require.Len(t, items, 1)
					require.Equal(t, delivery.ID, items[0].DeliveryID)

					return items, nil
				}),
		)
	})

	require.NoError(t, s.CreateShipmentDelivery(context.Background(), validCreate()))
	require.NoError(t, cbErr)
}

func TestService_Create_ExistingDeliveryRollsBack(t *testing.T) {
	ctrl, st, s := newTestService(t)

	shipment := domain.Shipment{ID: domain.ShipmentID(uuid.New()), Number: "SHIP-1"}

	var cbErr error
	expectWithTx(t, ctrl, st, &cbErr, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ShipmentByNumber(gomock.Any(), "SHIP-1").Return(&shipment, nil)
		tx.EXPECT().DeliveryExists(gomock.Any(), "DEL-1").Return(true, nil)
	})

	err := s.CreateShipmentDelivery(context.Background(), validCreate())
	require.ErrorIs(t, err, serrors.ErrConflict)
	// the callback failed, so WithTx rolled back
	require.Error(t, cbErr)
}

func TestService_Create_UniqueViolationIsConflict(t *testing.T) {
	ctrl, st, s := newTestService(t)

	shipment := domain.Shipment{ID: domain.ShipmentID(uuid.New()), Number: "SHIP-1"}

	expectWithTx(t, ctrl, st, nil, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ShipmentByNumber(gomock.Any(), "SHIP-1").Return(&shipment, nil)
		tx.EXPECT().DeliveryExists(gomock.Any(), "DEL-1").Return(false, nil)
		// another caller inserted the same delivery number in the meantime
		tx.EXPECT().StoreDelivery(gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(storage.ErrDuplicate, errors.New("ux_deliveries_delivery_number")))
	})

	err := s.CreateShipmentDelivery(context.Background(), validCreate())
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestService_Create_StorageFailureIsInternal(t *testing.T) {
	ctrl, st, s := newTestService(t)

	boom := errors.New("connection reset")
	expectWithTx(t, ctrl, st, nil, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ShipmentByNumber(gomock.Any(), "SHIP-1").Return(nil, boom)
	})

	err := s.CreateShipmentDelivery(context.Background(), validCreate())
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, boom)
}

func TestService_Create_BeginFailureIsInternal(t *testing.T) {
	_, st, s := newTestService(t)

	boom := errors.New("pool exhausted")
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(boom)

	err := s.CreateShipmentDelivery(context.Background(), validCreate())
	require.ErrorIs(t, err, serrors.ErrInternal)
}

func TestService_Create_ValidationSkipsTransaction(t *testing.T) {
	_, _, s := newTestService(t)

	req := validCreate()
	req.Delivery.Items = domain.BulkItems{{MaterialNumber: "M1", EvdSealNumber: "E1"}}

	// no WithTx expectation: gomock fails the test if a transaction opens
	err := s.CreateShipmentDelivery(context.Background(), req)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Update_RenameConflictRollsBack(t *testing.T) {
	ctrl, st, s := newTestService(t)

	shipment := domain.Shipment{ID: domain.ShipmentID(uuid.New()), Number: "SHIP-A"}

	var cbErr error
	expectWithTx(t, ctrl, st, &cbErr, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ShipmentByNumber(gomock.Any(), "SHIP-A").Return(&shipment, nil)
		tx.EXPECT().DeliveriesByShipmentID(gomock.Any(), shipment.ID).Return(nil, nil)
		tx.EXPECT().ShipmentExists(gomock.Any(), "SHIP-B").Return(true, nil)
	})

	err := s.UpdateShipment(context.Background(), "SHIP-A", shipping.UpdateRequest{ShipmentNumber: "SHIP-B"})
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Error(t, cbErr)
}

func TestService_Update_ReplacementDeletesItemsThenDeliveries(t *testing.T) {
	ctrl, st, s := newTestService(t)

	shipment := domain.Shipment{ID: domain.ShipmentID(uuid.New()), Number: "SHIP-1"}
	old := domain.Delivery{ID: domain.DeliveryID(uuid.New()), ShipmentID: shipment.ID, Number: "DEL-1",
		Type: domain.DeliveryTypeBulk}
	renamed := shipment
	renamed.Number = "SHIP-2"

	expectWithTx(t, ctrl, st, nil, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().ShipmentByNumber(gomock.Any(), "SHIP-1").Return(&shipment, nil),
			tx.EXPECT().DeliveriesByShipmentID(gomock.Any(), shipment.ID).Return([]domain.Delivery{old}, nil),
			tx.EXPECT().BulkItemsByDeliveryID(gomock.Any(), old.ID).Return(nil, nil),
			tx.EXPECT().ShipmentExists(gomock.Any(), "SHIP-2").Return(false, nil),
			tx.EXPECT().UpdateShipment(gomock.Any(), shipment.ID, storage.ShipmentUpdates{Number: "SHIP-2"}).
				Return(&renamed, nil),
			tx.EXPECT().DeleteContainerItemsByDeliveryID(gomock.Any(), old.ID).Return(nil),
			tx.EXPECT().DeleteBulkItemsByDeliveryID(gomock.Any(), old.ID).Return(nil),
			tx.EXPECT().DeleteDeliveries(gomock.Any(), old.ID).Return(nil),
		)
	})

	err := s.UpdateShipment(context.Background(), "SHIP-1", shipping.UpdateRequest{
		ShipmentNumber: "SHIP-2",
		Deliveries:     &[]shipping.DeliveryInput{},
	})
	require.NoError(t, err)
}

func TestService_Delete_FailureMidCascadeIsInternal(t *testing.T) {
	ctrl, st, s := newTestService(t)

	shipment := domain.Shipment{ID: domain.ShipmentID(uuid.New()), Number: "SHIP-1"}
	delivery := domain.Delivery{ID: domain.DeliveryID(uuid.New()), ShipmentID: shipment.ID, Number: "DEL-1",
		Type: domain.DeliveryTypeContainer}

	boom := errors.New("lock timeout")
	var cbErr error
	expectWithTx(t, ctrl, st, &cbErr, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ShipmentByNumber(gomock.Any(), "SHIP-1").Return(&shipment, nil)
		tx.EXPECT().DeliveriesByShipmentID(gomock.Any(), shipment.ID).Return([]domain.Delivery{delivery}, nil)
		tx.EXPECT().ContainerItemsByDeliveryID(gomock.Any(), delivery.ID).Return(nil, nil)
		tx.EXPECT().DeleteContainerItemsByDeliveryID(gomock.Any(), delivery.ID).Return(nil)
		tx.EXPECT().DeleteBulkItemsByDeliveryID(gomock.Any(), delivery.ID).Return(boom)
	})

	err := s.DeleteShipment(context.Background(), "SHIP-1")
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, cbErr, boom)
}

func TestService_Read_StorageFailureIsNotSemantic(t *testing.T) {
	_, st, s := newTestService(t)

	boom := errors.New("connection reset")
	st.EXPECT().ShipmentByNumber(gomock.Any(), "SHIP-1").Return(nil, boom)

	_, err := s.ByShipmentNumber(context.Background(), "SHIP-1")
	require.ErrorIs(t, err, boom)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))

	var semantic *serrors.Error
	require.NotErrorAs(t, err, &semantic)
}
