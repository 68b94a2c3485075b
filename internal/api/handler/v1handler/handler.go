// Package v1handler implements the generated v1specs.Handler on top of
// shipping.Service.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"shipments/internal/api/specs/v1specs"
	"shipments/internal/shipping"
	"shipments/pkg/logger"
	"shipments/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// PathPrefix is the common prefix of every v1 route.
const PathPrefix = "/v1/shipment-deliveries"

type Deps struct {
	Shipping shipping.Service
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:   "resource not found",
	serrors.ErrBadRequest: "bad request",
	serrors.ErrConflict:   "resource already exists",
	serrors.ErrInternal:   "internal error",
	serrors.ErrTimeout:    "request timed out",
}

var statusCodes = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:   http.StatusNotFound,
	serrors.ErrBadRequest: http.StatusBadRequest,
	serrors.ErrConflict:   http.StatusConflict,
	serrors.ErrInternal:   http.StatusInternalServerError,
	serrors.ErrTimeout:    http.StatusGatewayTimeout,
}

// NewError converts err into an error response. Semantic errors keep their
// message, internal ones are logged and replaced by a generic message.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	kind := serrors.KindOf(err)

	status, ok := statusCodes[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := defaultMessages[kind]
	var semantic *serrors.Error
	if kind != serrors.ErrInternal && kind != serrors.ErrTimeout &&
		errors.As(err, &semantic) && semantic.Message() != "" {
		message = semantic.Message()
	}
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

// HandleError answers requests the generated server rejects before they
// reach a handler: unreadable parameters, bodies and content types.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := h.NewError(ctx, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request: %s", err.Error()))

	e := new(jx.Encoder)
	res.Response.Encode(e)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}
