// Package shipping implements the consistency engine of the shipment
// aggregate. Every mutating use-case runs in exactly one storage
// transaction which is committed on success and rolled back on every other
// path. Reads run without a transaction.
package shipping

import (
	"context"
	"errors"
	"fmt"
	"math"
	"shipments/internal/aggregate"
	"shipments/pkg/domain"
	"shipments/pkg/logger"
	"shipments/pkg/metrics"
	"shipments/pkg/serrors"
	"shipments/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "shipments/internal/shipping"

// service is the concrete implementation of the Service interface.
type service struct {
	options   Options
	storage   storage.Storage
	tracer    trace.Tracer
	mutations metric.Int64Counter
}

// New creates a new Service backed by the provided storage. Spans and
// metrics go to the global OpenTelemetry providers.
func New(storage storage.Storage, options Options) Service {
	mutations, err := otel.Meter(metrics.MeterName).Int64Counter(metrics.Mutations,
		metric.WithDescription("Number of shipment mutations by operation and outcome."))
	if err != nil {
		otel.Handle(err)
		mutations = noop.Int64Counter{}
	}

	return &service{
		options:   options,
		storage:   storage,
		tracer:    otel.Tracer(tracerName),
		mutations: mutations,
	}
}

// count records the outcome of a mutation, "ok" or the error kind.
func (s *service) count(ctx context.Context, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = serrors.KindOf(err).Error()
	}

	s.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}

func (s *service) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "shipping."+op, trace.WithAttributes(attrs...))
}

// end closes the span. Semantic failures are recorded as events, anything
// else marks the span as failed.
func end(span trace.Span, err error) {
	defer span.End()

	if err == nil {
		return
	}

	if kind := serrors.KindOf(err); kind != serrors.ErrInternal && kind != serrors.ErrTimeout {
		span.AddEvent("business_error", trace.WithAttributes(
			attribute.String("error.kind", kind.Error()),
			attribute.String("error", err.Error()),
		))

		return
	}

	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

// mutationError classifies an error returned from a transaction. By the time
// it runs the transaction has been rolled back. Semantic errors are kept, a
// unique violation raised by the store is a conflict and anything else is an
// internal failure.
func mutationError(ctx context.Context, err error, msg string) error {
	var semantic *serrors.Error
	switch {
	case errors.As(err, &semantic):
		if semantic.Kind() == serrors.ErrConflict {
			logger.Warn(ctx, msg, zap.Error(err))
		} else {
			logger.Info(ctx, msg, zap.Error(err))
		}

		return err
	case errors.Is(err, storage.ErrDuplicate):
		logger.Warn(ctx, msg, zap.Error(err))

		return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
	default:
		logger.Error(ctx, msg, zap.Error(err))

		return serrors.Wrap(serrors.ErrInternal, err, "%s", msg)
	}
}

func (s *service) CreateShipmentDelivery(ctx context.Context, req CreateRequest) (err error) {
	ctx, span := s.start(ctx, "CreateShipmentDelivery",
		attribute.String("shipment.number", req.ShipmentNumber),
		attribute.String("delivery.number", req.Delivery.Number))
	defer func() {
		s.count(ctx, "CreateShipmentDelivery", err)
		end(span, err)
	}()

	ctx = logger.WithFields(ctx,
		zap.String("shipment_number", req.ShipmentNumber),
		zap.String("delivery_number", req.Delivery.Number))

	if err := validateShipmentNumber(req.ShipmentNumber); err != nil {
		return err
	}
	if err := validateDelivery(req.Delivery); err != nil {
		return err
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		repo := aggregate.New(tx)

		shipment, err := repo.ShipmentByNumber(ctx, req.ShipmentNumber)
		if err != nil {
			return err
		}
		// the shipment must be identity-resolved before its delivery is written
		if shipment == nil {
			shipment, err = repo.StoreShipment(ctx, req.ShipmentNumber)
			if err != nil {
				return err
			}
		}

		exists, err := repo.DeliveryExists(ctx, req.Delivery.Number)
		if err != nil {
			return err
		}
		if exists {
			return serrors.With(serrors.ErrConflict, "delivery %q already exists", req.Delivery.Number)
		}

		_, err = repo.StoreDelivery(ctx, req.Delivery.toDomain(shipment.ID))

		return err
	}); err != nil {
		return mutationError(ctx, err, "could not create shipment delivery")
	}

	logger.Info(ctx, "shipment delivery created", zap.String("delivery_type", string(req.Delivery.Type)))

	return nil
}

func (s *service) ByShipmentNumber(ctx context.Context, shipmentNumber string) (_ *ShipmentView, err error) {
	ctx, span := s.start(ctx, "ByShipmentNumber", attribute.String("shipment.number", shipmentNumber))
	defer func() { end(span, err) }()

	shipment, err := aggregate.New(s.storage).ShipmentWithDeliveries(ctx, shipmentNumber)
	if err != nil {
		return nil, fmt.Errorf("could not get shipment: %w", err)
	}
	if shipment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "shipment %q not found", shipmentNumber)
	}

	view := Project(*shipment)

	return &view, nil
}

func (s *service) ByDeliveryNumber(ctx context.Context, deliveryNumber string) (_ *ShipmentView, err error) {
	ctx, span := s.start(ctx, "ByDeliveryNumber", attribute.String("delivery.number", deliveryNumber))
	defer func() { end(span, err) }()

	shipment, err := aggregate.New(s.storage).DeliveryWithShipmentSubtree(ctx, deliveryNumber)
	if err != nil {
		return nil, fmt.Errorf("could not get shipment of delivery: %w", err)
	}
	if shipment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "delivery %q not found", deliveryNumber)
	}

	view := Project(*shipment)

	return &view, nil
}

func (s *service) AllShipments(ctx context.Context) (_ []ShipmentView, err error) {
	ctx, span := s.start(ctx, "AllShipments")
	defer func() { end(span, err) }()

	shipments, err := aggregate.New(s.storage).AllShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list shipments: %w", err)
	}

	return projectAll(shipments), nil
}

func (s *service) ShipmentsPage(ctx context.Context, page, pageSize uint) (_ *ShipmentPage, err error) {
	ctx, span := s.start(ctx, "ShipmentsPage",
		attribute.Int64("page", int64(page)),           //nolint: gosec
		attribute.Int64("page_size", int64(pageSize))) //nolint: gosec
	defer func() { end(span, err) }()

	if pageSize == 0 {
		pageSize = s.options.DefaultPageSize
	}
	if page == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "page must be at least 1")
	}
	if pageSize == 0 || pageSize > s.options.MaxPageSize {
		return nil, serrors.With(serrors.ErrBadRequest, "page size must be between 1 and %d", s.options.MaxPageSize)
	}
	if page-1 > math.MaxInt64/pageSize {
		return nil, serrors.With(serrors.ErrBadRequest, "page %d is out of range", page)
	}

	shipments, total, err := aggregate.New(s.storage).ShipmentsPage(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("could not list shipments page: %w", err)
	}

	totalPages := uint((total + int64(pageSize) - 1) / int64(pageSize)) //nolint: gosec

	return &ShipmentPage{
		Shipments:   projectAll(shipments),
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

func (s *service) UpdateShipment(ctx context.Context, currentShipmentNumber string, req UpdateRequest) (err error) {
	ctx, span := s.start(ctx, "UpdateShipment",
		attribute.String("shipment.number", currentShipmentNumber),
		attribute.String("shipment.new_number", req.ShipmentNumber),
		attribute.Bool("replace_deliveries", req.Deliveries != nil))
	defer func() {
		s.count(ctx, "UpdateShipment", err)
		end(span, err)
	}()

	ctx = logger.WithFields(ctx,
		zap.String("shipment_number", currentShipmentNumber),
		zap.String("new_shipment_number", req.ShipmentNumber))

	if err := validateShipmentNumber(req.ShipmentNumber); err != nil {
		return err
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		repo := aggregate.New(tx)

		shipment, err := repo.ShipmentWithDeliveries(ctx, currentShipmentNumber)
		if err != nil {
			return err
		}
		if shipment == nil {
			return serrors.With(serrors.ErrNotFound, "shipment %q not found", currentShipmentNumber)
		}

		if req.ShipmentNumber != shipment.Number {
			exists, err := repo.ShipmentExists(ctx, req.ShipmentNumber)
			if err != nil {
				return err
			}
			if exists {
				return serrors.With(serrors.ErrConflict, "shipment %q already exists", req.ShipmentNumber)
			}
		}

		renamed, err := repo.RenameShipment(ctx, shipment.ID, req.ShipmentNumber)
		if err != nil {
			return err
		}
		if renamed == nil {
			return serrors.With(serrors.ErrNotFound, "shipment %q not found", currentShipmentNumber)
		}

		if req.Deliveries == nil {
			return nil
		}

		return replaceDeliveries(ctx, repo, *shipment, *req.Deliveries)
	}); err != nil {
		return mutationError(ctx, err, "could not update shipment")
	}

	logger.Info(ctx, "shipment updated")

	return nil
}

// replaceDeliveries drops the whole delivery subtree of shipment and writes
// deliveries in its place. Any invalid entry fails the whole replacement.
func replaceDeliveries(ctx context.Context,
	repo aggregate.Repository,
	shipment domain.Shipment,
	deliveries []DeliveryInput) error {
	if err := repo.DeleteDeliveries(ctx, shipment.Deliveries...); err != nil {
		return err
	}

	for i, d := range deliveries {
		if err := validateDelivery(d); err != nil {
			return fmt.Errorf("deliveries[%d]: %w", i, err)
		}

		exists, err := repo.DeliveryExists(ctx, d.Number)
		if err != nil {
			return err
		}
		if exists {
			return serrors.With(serrors.ErrConflict, "delivery %q already exists", d.Number)
		}

		if _, err := repo.StoreDelivery(ctx, d.toDomain(shipment.ID)); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) DeleteShipment(ctx context.Context, shipmentNumber string) (err error) {
	ctx, span := s.start(ctx, "DeleteShipment", attribute.String("shipment.number", shipmentNumber))
	defer func() {
		s.count(ctx, "DeleteShipment", err)
		end(span, err)
	}()

	ctx = logger.WithFields(ctx, zap.String("shipment_number", shipmentNumber))

	var deliveries int
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		repo := aggregate.New(tx)

		shipment, err := repo.ShipmentWithDeliveries(ctx, shipmentNumber)
		if err != nil {
			return err
		}
		if shipment == nil {
			return serrors.With(serrors.ErrNotFound, "shipment %q not found", shipmentNumber)
		}
		deliveries = len(shipment.Deliveries)

		return repo.DeleteShipment(ctx, *shipment)
	}); err != nil {
		return mutationError(ctx, err, "could not delete shipment")
	}

	logger.Info(ctx, "shipment deleted", zap.Int("deliveries", deliveries))

	return nil
}
