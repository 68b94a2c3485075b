package v1handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"shipments/internal/api/handler/v1handler"
	"shipments/internal/api/specs/v1specs"
	"shipments/internal/shipping"
	mockshipping "shipments/internal/shipping/mock"
	"shipments/pkg/domain"
	"shipments/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var created = time.Date(2025, 8, 14, 20, 27, 7, 0, time.UTC) //nolint: gochecknoglobals

func newServer(t *testing.T) (*mockshipping.MockService, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mockshipping.NewMockService(ctrl)

	h := v1handler.New(v1handler.Deps{Shipping: svc})
	v1Srv, err := v1specs.NewServer(h,
		v1specs.WithErrorHandler(h.HandleError),
		v1specs.WithPathPrefix("/v1"),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(v1Srv)
	t.Cleanup(srv.Close)

	return svc, srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(b)
}

func shipmentView() *shipping.ShipmentView {
	return &shipping.ShipmentView{
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
				CreatedAt:      created,
				BulkItems: []shipping.BulkItemView{
					{MaterialNumber: "M2", EvdSealNumber: "E2", CreatedAt: created},
				},
			},
		},
	}
}

const shipmentJSON = `{
	"shipmentNumber": "SHIP-1",
	"shipmentCreatedAt": "2025-08-14T20:27:07Z",
	"deliveries": [
		{
			"deliveryNumber": "DEL-1",
			"deliveryType": "CONTAINER",
			"createdAt": "2025-08-14T20:27:07Z",
			"containerItems": [
				{"materialNumber": "M1", "serialNumber": "S1", "connectionLabel": "L1", "createdAt": "2025-08-14T20:27:07Z"}
			]
		},
		{
			"deliveryNumber": "DEL-2",
			"deliveryType": "BULK",
			"createdAt": "2025-08-14T20:27:07Z",
			"bulkItems": [
				{"materialNumber": "M2", "evdSealNumber": "E2", "connectionLabel": "", "createdAt": "2025-08-14T20:27:07Z"}
			]
		}
	]
}`

func TestCreateShipmentDelivery(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().CreateShipmentDelivery(gomock.Any(), shipping.CreateRequest{
		ShipmentNumber: "SHIP-1",
		Delivery: shipping.DeliveryInput{
			Number: "DEL-1",
			Type:   domain.DeliveryTypeContainer,
			Items: domain.ContainerItems{
				{MaterialNumber: "M1", SerialNumber: "S1", ConnectionLabel: "L1"},
			},
		},
	}).Return(nil)

	res, body := do(t, srv, http.MethodPost, "/v1/shipment-deliveries", `{
		"shipmentNumber": "SHIP-1",
		"deliveryNumber": "DEL-1",
		"deliveryType": "Container",
		"containerItems": [{"materialNumber": "M1", "serialNumber": "S1", "connectionLabel": "L1", "extra": true}]
	}`)

	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "/v1/shipment-deliveries/delivery/DEL-1", res.Header.Get("Location"))
	require.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))
	require.JSONEq(t, `{
		"shipmentNumber": "SHIP-1",
		"deliveryNumber": "DEL-1",
		"deliveryType": "CONTAINER",
		"containerItems": [{"materialNumber": "M1", "serialNumber": "S1", "connectionLabel": "L1"}]
	}`, body)
}

func TestCreateShipmentDelivery_NumericDeliveryType(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().CreateShipmentDelivery(gomock.Any(), shipping.CreateRequest{
		ShipmentNumber: "SHIP-1",
		Delivery: shipping.DeliveryInput{
			Number: "DEL-2",
			Type:   domain.DeliveryTypeBulk,
			Items:  domain.BulkItems{{MaterialNumber: "M2", EvdSealNumber: "E2"}},
		},
	}).Return(nil)

	res, _ := do(t, srv, http.MethodPost, "/v1/shipment-deliveries", `{
		"shipmentNumber": "SHIP-1",
		"deliveryNumber": "DEL-2",
		"deliveryType": 1,
		"containerItems": [],
		"bulkItems": [{"materialNumber": "M2", "evdSealNumber": "E2"}]
	}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestCreateShipmentDelivery_MissingItemsReachEngine(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().CreateShipmentDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req shipping.CreateRequest) error {
			require.Nil(t, req.Delivery.Items)

			return serrors.With(serrors.ErrBadRequest, "delivery %q of type %s has no items", "DEL-1", "CONTAINER")
		})

	res, body := do(t, srv, http.MethodPost, "/v1/shipment-deliveries",
		`{"shipmentNumber": "SHIP-1", "deliveryNumber": "DEL-1", "deliveryType": "CONTAINER"}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.JSONEq(t, `{"code": "BAD_REQUEST", "message": "delivery \"DEL-1\" of type CONTAINER has no items"}`, body)
}

func TestCreateShipmentDelivery_RejectedBeforeEngine(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"shipmentNumber": `},
		{name: "empty body", body: ``},
		{name: "not an object", body: `[]`},
		{name: "unknown type", body: `{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": "PALLET"}`},
		{name: "unknown ordinal", body: `{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": 7}`},
		{name: "missing type", body: `{"shipmentNumber": "S", "deliveryNumber": "D"}`},
		{
			name: "container with bulk items",
			body: `{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": "CONTAINER",
				"containerItems": [{"materialNumber": "M", "serialNumber": "S"}],
				"bulkItems": [{"materialNumber": "M", "evdSealNumber": "E"}]}`,
		},
		{
			name: "bulk with container items",
			body: `{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": "BULK",
				"containerItems": [{"materialNumber": "M", "serialNumber": "S"}]}`,
		},
		{name: "number as shipment number", body: `{"shipmentNumber": 12}`},
		{name: "null type", body: `{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": null}`},
		{name: "null item list", body: `{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": "BULK", "bulkItems": null}`},
		{
			name: "trailing data after the object",
			body: `{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": "BULK",
				"bulkItems": [{"materialNumber": "M", "evdSealNumber": "E"}]} {"shipmentNumber": "X"}`,
		},
		{
			name: "trailing garbage after the object",
			body: `{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": "BULK",
				"bulkItems": [{"materialNumber": "M", "evdSealNumber": "E"}]}garbage`,
		},
		{
			name: "shipment number too long",
			body: `{"shipmentNumber": "` + strings.Repeat("S", 51) + `", "deliveryNumber": "D", "deliveryType": "BULK",
				"bulkItems": [{"materialNumber": "M", "evdSealNumber": "E"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: the engine must not be called
			_, srv := newServer(t)

			res, body := do(t, srv, http.MethodPost, "/v1/shipment-deliveries", tt.body)
			require.Equal(t, http.StatusBadRequest, res.StatusCode)
			require.Contains(t, body, `"code":"BAD_REQUEST"`)
		})
	}
}

func TestCreateShipmentDelivery_TrailingWhitespaceAccepted(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().CreateShipmentDelivery(gomock.Any(), gomock.Any()).Return(nil)

	res, _ := do(t, srv, http.MethodPost, "/v1/shipment-deliveries", `{"shipmentNumber": "S", "deliveryNumber": "D",
		"deliveryType": "bulk", "bulkItems": [{"materialNumber": "M", "evdSealNumber": "E"}]}`+"\n\t ")
	require.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestCreateShipmentDelivery_ContentType(t *testing.T) {
	_, srv := newServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/shipment-deliveries", strings.NewReader(
		`{"shipmentNumber": "S", "deliveryNumber": "D", "deliveryType": "BULK"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateShipmentDelivery_Conflict(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().CreateShipmentDelivery(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrConflict, "delivery %q already exists", "DEL-1"))

	res, body := do(t, srv, http.MethodPost, "/v1/shipment-deliveries", `{
		"shipmentNumber": "SHIP-1", "deliveryNumber": "DEL-1", "deliveryType": "CONTAINER",
		"containerItems": [{"materialNumber": "M1", "serialNumber": "S1"}]
	}`)
	require.Equal(t, http.StatusConflict, res.StatusCode)
	require.JSONEq(t, `{"code": "CONFLICT", "message": "delivery \"DEL-1\" already exists"}`, body)
}

func TestGetByShipmentNumber(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().ByShipmentNumber(gomock.Any(), "SHIP-1").Return(shipmentView(), nil)

	res, body := do(t, srv, http.MethodGet, "/v1/shipment-deliveries/shipment/SHIP-1", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, shipmentJSON, body)
}

func TestGetByDeliveryNumber(t *testing.T) {
	svc, srv := newServer(t)

	gomock.InOrder(
		svc.EXPECT().ByDeliveryNumber(gomock.Any(), "DEL-2").Return(shipmentView(), nil),
		svc.EXPECT().ByDeliveryNumber(gomock.Any(), "DEL-404").
			Return(nil, serrors.With(serrors.ErrNotFound, "delivery %q not found", "DEL-404")),
	)

	res, body := do(t, srv, http.MethodGet, "/v1/shipment-deliveries/delivery/DEL-2", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, shipmentJSON, body)

	res, body = do(t, srv, http.MethodGet, "/v1/shipment-deliveries/delivery/DEL-404", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.JSONEq(t, `{"code": "NOT_FOUND", "message": "delivery \"DEL-404\" not found"}`, body)
}

func TestListShipments(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().AllShipments(gomock.Any()).Return([]shipping.ShipmentView{}, nil)

	res, body := do(t, srv, http.MethodGet, "/v1/shipment-deliveries", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `[]`, body)
}

func TestListShipmentsPage(t *testing.T) {
	svc, srv := newServer(t)

	gomock.InOrder(
		svc.EXPECT().ShipmentsPage(gomock.Any(), uint(2), uint(1)).Return(&shipping.ShipmentPage{
			Shipments:   []shipping.ShipmentView{*shipmentView()},
			Page:        2,
			PageSize:    1,
			TotalCount:  3,
			TotalPages:  3,
			HasNext:     true,
			HasPrevious: true,
		}, nil),
		// page defaults to 1 and a missing pageSize is left to the engine
		svc.EXPECT().ShipmentsPage(gomock.Any(), uint(1), uint(0)).
			Return(&shipping.ShipmentPage{Shipments: []shipping.ShipmentView{}, Page: 1, PageSize: 20}, nil),
	)

	res, body := do(t, srv, http.MethodGet, "/v1/shipment-deliveries/page?page=2&pageSize=1", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{
		"items": [`+shipmentJSON+`],
		"page": 2, "pageSize": 1, "totalCount": 3, "totalPages": 3,
		"hasNext": true, "hasPrevious": true
	}`, body)

	res, body = do(t, srv, http.MethodGet, "/v1/shipment-deliveries/page?pageSize=0", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{
		"items": [], "page": 1, "pageSize": 20, "totalCount": 0, "totalPages": 0,
		"hasNext": false, "hasPrevious": false
	}`, body)

	// rejected before reaching the engine
	for _, query := range []string{"page=0", "page=abc", "pageSize=-1"} {
		res, body = do(t, srv, http.MethodGet, "/v1/shipment-deliveries/page?"+query, "")
		require.Equal(t, http.StatusBadRequest, res.StatusCode, query)
		require.Contains(t, body, `"code":"BAD_REQUEST"`, query)
	}
}

func TestListShipments_StorageFailure(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().AllShipments(gomock.Any()).Return(nil, errors.New("connection reset by peer"))

	res, body := do(t, srv, http.MethodGet, "/v1/shipment-deliveries", "")
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.JSONEq(t, `{"code": "INTERNAL", "message": "internal error"}`, body)
}

func TestUpdateShipment(t *testing.T) {
	tests := []struct {
		name string
		body string
		want shipping.UpdateRequest
	}{
		{
			name: "rename only",
			body: `{"shipmentNumber": "SHIP-2"}`,
			want: shipping.UpdateRequest{ShipmentNumber: "SHIP-2"},
		},
		{
			name: "null deliveries leave the subtree untouched",
			body: `{"shipmentNumber": "SHIP-2", "deliveries": null}`,
			want: shipping.UpdateRequest{ShipmentNumber: "SHIP-2"},
		},
		{
			name: "empty deliveries replace the subtree",
			body: `{"shipmentNumber": "SHIP-2", "deliveries": []}`,
			want: shipping.UpdateRequest{ShipmentNumber: "SHIP-2", Deliveries: &[]shipping.DeliveryInput{}},
		},
		{
			name: "replacement list",
			body: `{"shipmentNumber": "SHIP-1", "deliveries": [
				{"deliveryNumber": "DEL-9", "deliveryType": "BULK", "bulkItems": [{"materialNumber": "M", "evdSealNumber": "E"}]},
				{"deliveryNumber": "DEL-8", "deliveryType": 0, "containerItems": [{"materialNumber": "M", "serialNumber": "S", "connectionLabel": "L"}]}
			]}`,
			want: shipping.UpdateRequest{ShipmentNumber: "SHIP-1", Deliveries: &[]shipping.DeliveryInput{
				{
					Number: "DEL-9",
					Type:   domain.DeliveryTypeBulk,
					Items:  domain.BulkItems{{MaterialNumber: "M", EvdSealNumber: "E"}},
				},
				{
					Number: "DEL-8",
					Type:   domain.DeliveryTypeContainer,
					Items:  domain.ContainerItems{{MaterialNumber: "M", SerialNumber: "S", ConnectionLabel: "L"}},
				},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, srv := newServer(t)
			svc.EXPECT().UpdateShipment(gomock.Any(), "SHIP-1", tt.want).Return(nil)

			res, body := do(t, srv, http.MethodPut, "/v1/shipment-deliveries/shipment/SHIP-1", tt.body)
			require.Equal(t, http.StatusNoContent, res.StatusCode)
			require.Empty(t, body)
		})
	}
}

func TestUpdateShipment_Errors(t *testing.T) {
	t.Run("mismatched replacement items", func(t *testing.T) {
		_, srv := newServer(t)

		res, body := do(t, srv, http.MethodPut, "/v1/shipment-deliveries/shipment/SHIP-1", `{
			"shipmentNumber": "SHIP-1",
			"deliveries": [{"deliveryNumber": "D", "deliveryType": "BULK", "containerItems": [{"materialNumber": "M", "serialNumber": "S"}]}]
		}`)
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
		require.Contains(t, body, "must not carry containerItems")
	})

	t.Run("deliveries not an array", func(t *testing.T) {
		_, srv := newServer(t)

		res, _ := do(t, srv, http.MethodPut, "/v1/shipment-deliveries/shipment/SHIP-1",
			`{"shipmentNumber": "SHIP-1", "deliveries": {}}`)
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	for _, tt := range []struct {
		err    error
		status int
	}{
		{serrors.With(serrors.ErrNotFound, "shipment %q not found", "SHIP-1"), http.StatusNotFound},
		{serrors.With(serrors.ErrConflict, "shipment %q already exists", "SHIP-2"), http.StatusConflict},
		{serrors.Wrap(serrors.ErrInternal, errors.New("tx aborted"), "could not update shipment"), http.StatusInternalServerError},
	} {
		t.Run(serrors.KindOf(tt.err).Error(), func(t *testing.T) {
			svc, srv := newServer(t)
			svc.EXPECT().UpdateShipment(gomock.Any(), "SHIP-1", gomock.Any()).Return(tt.err)

			res, _ := do(t, srv, http.MethodPut, "/v1/shipment-deliveries/shipment/SHIP-1", `{"shipmentNumber": "SHIP-2"}`)
			require.Equal(t, tt.status, res.StatusCode)
		})
	}
}

func TestDeleteShipment(t *testing.T) {
	svc, srv := newServer(t)

	gomock.InOrder(
		svc.EXPECT().DeleteShipment(gomock.Any(), "SHIP-1").Return(nil),
		svc.EXPECT().DeleteShipment(gomock.Any(), "SHIP-1").
			Return(serrors.With(serrors.ErrNotFound, "shipment %q not found", "SHIP-1")),
	)

	res, body := do(t, srv, http.MethodDelete, "/v1/shipment-deliveries/shipment/SHIP-1", "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Empty(t, body)

	res, _ = do(t, srv, http.MethodDelete, "/v1/shipment-deliveries/shipment/SHIP-1", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	_, srv := newServer(t)

	res, _ := do(t, srv, http.MethodPatch, "/v1/shipment-deliveries/shipment/SHIP-1", "")
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	require.Equal(t, "DELETE,GET,PUT", res.Header.Get("Allow"))

	res, _ = do(t, srv, http.MethodDelete, "/v1/shipment-deliveries", "")
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	require.Equal(t, "GET,POST", res.Header.Get("Allow"))
}

func TestRoutes_NotFound(t *testing.T) {
	// no expectations: the engine must not be called
	_, srv := newServer(t)

	for _, path := range []string{
		"/v1/unknown",
		"/v1/shipment-deliveries/shipment/SHIP-1/extra",
		"/v1/shipment-deliveries/pages",
		"/v2/shipment-deliveries",
	} {
		res, _ := do(t, srv, http.MethodGet, path, "")
		require.Equal(t, http.StatusNotFound, res.StatusCode, path)
	}
}

func TestGetByShipmentNumber_EscapedPath(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().ByShipmentNumber(gomock.Any(), "SHIP/1 A").Return(shipmentView(), nil)

	res, _ := do(t, srv, http.MethodGet, "/v1/shipment-deliveries/shipment/SHIP%2F1%20A", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
}
