package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"snackbasket/config"
	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/domain/service"
	"snackbasket/internal/errors"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	initialStatusNote = "Order received and processing started"
	systemActor       = "system"
)

type deliveryService struct {
	deliveryRepo   repository.DeliveryRepository
	orderRepo      repository.OrderRepository
	txManager      repository.TransactionManager
	shopRepo       repository.ShopRepository
	labels         service.LabelService
	cfg            config.DeliveryConfig
	now            func() time.Time
	trackingNumber func() string
	logger         *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	DeliveryRepo repository.DeliveryRepository
	OrderRepo    repository.OrderRepository
	TxManager    repository.TransactionManager
	ShopRepo     repository.ShopRepository
	Labels       service.LabelService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDeliveryService creates the delivery usecase.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	srv := &deliveryService{
		deliveryRepo: params.DeliveryRepo,
		orderRepo:    params.OrderRepo,
		txManager:    params.TxManager,
		shopRepo:     params.ShopRepo,
		labels:       params.Labels,
		cfg:          params.Config.Delivery,
		now:          time.Now,
		logger:       params.Logger,
	}
	srv.trackingNumber = srv.randomTrackingNumber

	return srv
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// randomTrackingNumber returns prefix-NNNNNN with six digits. Numbers are for
// humans and are not guaranteed unique.
func (srv *deliveryService) randomTrackingNumber() string {
	prefix := srv.cfg.TrackingPrefix
	if prefix == "" {
		prefix = "TR"
	}

	return fmt.Sprintf("%s-%d", prefix, 100000+rand.IntN(900000))
}

func (srv *deliveryService) CreateDeliveryFromOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	existing, err := srv.findByOrder(ctx, orderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrDeliveryNotFound) {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	estimated := srv.now().Add(srv.leadTime())
	delivery := srv.newDelivery(order.ID, order.ShopID, entity.DeliveryStatusPackaging,
		srv.cfg.InitialLocation, &estimated, "", initialStatusNote, systemActor)

	err = srv.deliveryRepo.Create(ctx, delivery)
	if errors.Is(err, repository.ErrDeliveryExists) {
		// Lost a race with another creator; theirs is the delivery.
		return srv.findByOrder(ctx, orderID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create delivery")
	}

	srv.log(ctx).Info("Delivery created from order",
		slog.String("deliveryID", delivery.ID.String()),
		slog.String("orderID", orderID.String()),
		slog.String("trackingNumber", delivery.TrackingNumber))

	return delivery, nil
}

func (srv *deliveryService) CreateDelivery(ctx context.Context, input *usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	status := entity.DeliveryStatusPackaging
	if input.Status != "" {
		status = entity.DeliveryStatus(input.Status)
		if !status.IsValid() {
			return nil, invalid(fmt.Sprintf("unknown delivery status %q", input.Status))
		}
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(input.OrderID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	shopID := input.ShopID
	if shopID == uuid.Nil {
		shopID = order.ShopID
	} else if shopID != order.ShopID {
		return nil, invalid("shop does not match the order")
	}

	if _, err := srv.findByOrder(ctx, input.OrderID); err == nil {
		return nil, domainerrors.ErrDeliveryAlreadyExists.WithDetails(input.OrderID.String())
	} else if !errors.Is(err, repository.ErrDeliveryNotFound) {
		return nil, err
	}

	location := strings.TrimSpace(input.CurrentLocation)
	if location == "" {
		location = srv.cfg.InitialLocation
	}
	estimated := input.EstimatedDeliveryDate
	if estimated == nil {
		at := srv.now().Add(srv.leadTime())
		estimated = &at
	}

	delivery := srv.newDelivery(input.OrderID, shopID, status, location, estimated,
		strings.TrimSpace(input.TrackingNumber), strings.TrimSpace(input.Notes), input.UpdatedBy)

	err = srv.deliveryRepo.Create(ctx, delivery)
	if errors.Is(err, repository.ErrDeliveryExists) {
		return nil, domainerrors.ErrDeliveryAlreadyExists.WithDetails(input.OrderID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create delivery")
	}

	srv.log(ctx).Info("Delivery created",
		slog.String("deliveryID", delivery.ID.String()),
		slog.String("status", status.String()))

	return delivery, nil
}

func (srv *deliveryService) newDelivery(orderID, shopID uuid.UUID, status entity.DeliveryStatus,
	location string, estimated *time.Time, trackingNumber, notes, updatedBy string,
) *entity.Delivery {
	if trackingNumber == "" {
		trackingNumber = srv.trackingNumber()
	}

	now := srv.now()
	delivery := &entity.Delivery{
		ID:                    uuid.New(),
		OrderID:               orderID,
		ShopID:                shopID,
		CurrentLocation:       location,
		EstimatedDeliveryDate: estimated,
		TrackingNumber:        trackingNumber,
		DeliveryNotes:         notes,
		CreatedAt:             now,
	}
	delivery.RecordStatus(status, notes, location, updatedBy, now)

	return delivery
}

func (srv *deliveryService) leadTime() time.Duration {
	if srv.cfg.EstimatedLeadTime > 0 {
		return srv.cfg.EstimatedLeadTime
	}

	return 72 * time.Hour
}

// Advance moves the delivery to any phase. Backward moves are rejected only
// when forward-only enforcement is configured.
func (srv *deliveryService) Advance(ctx context.Context, id uuid.UUID, input *usecase.AdvanceDeliveryInput) (*entity.Delivery, error) {
	status := entity.DeliveryStatus(input.Status)
	if !status.IsValid() {
		return nil, invalid(fmt.Sprintf("unknown delivery status %q", input.Status))
	}

	return srv.changeStatus(ctx, id, input, func(delivery *entity.Delivery) (entity.DeliveryStatus, error) {
		if srv.cfg.EnforceForwardOnly && status.Index() < delivery.Status.Index() {
			return "", domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("cannot move from %s back to %s", delivery.Status, status))
		}

		return status, nil
	})
}

func (srv *deliveryService) AdvanceToNext(ctx context.Context, id uuid.UUID, input *usecase.AdvanceDeliveryInput) (*entity.Delivery, error) {
	return srv.changeStatus(ctx, id, input, func(delivery *entity.Delivery) (entity.DeliveryStatus, error) {
		next, ok := delivery.NextStatus()
		if !ok {
			return "", domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("no phase after %s", delivery.Status))
		}

		return next, nil
	})
}

// changeStatus holds the delivery row lock across the read, append and write
// of the status history, so concurrent changes each keep their entry.
func (srv *deliveryService) changeStatus(ctx context.Context, id uuid.UUID, input *usecase.AdvanceDeliveryInput,
	target func(delivery *entity.Delivery) (entity.DeliveryStatus, error),
) (*entity.Delivery, error) {
	var (
		updated  *entity.Delivery
		previous entity.DeliveryStatus
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryRepo := repoFactory.NewDeliveryRepository()

		delivery, err := deliveryRepo.FindByIDForUpdate(ctx, id)
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return domainerrors.ErrDeliveryNotFound.WithDetails(id.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock delivery")
		}

		status, err := target(delivery)
		if err != nil {
			return err
		}

		previous = delivery.Status
		delivery.RecordStatus(status, strings.TrimSpace(input.Notes), strings.TrimSpace(input.Location), input.UpdatedBy, srv.now())
		if err := deliveryRepo.Update(ctx, delivery); err != nil {
			return errors.Wrap(err, "failed to update delivery status")
		}
		updated = delivery

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Delivery status changed",
		slog.String("deliveryID", updated.ID.String()),
		slog.String("from", previous.String()),
		slog.String("to", updated.Status.String()))

	return updated, nil
}

func (srv *deliveryService) GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrDeliveryNotFound) {
		return nil, domainerrors.ErrDeliveryNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return delivery, nil
}

func (srv *deliveryService) GetDeliveryByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.findByOrder(ctx, orderID)
	if errors.Is(err, repository.ErrDeliveryNotFound) {
		return nil, domainerrors.ErrDeliveryNotFound.WithDetails("order " + orderID.String())
	}

	return delivery, err
}

// findByOrder passes repository.ErrDeliveryNotFound through unwrapped.
func (srv *deliveryService) findByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrDeliveryNotFound) {
		return nil, repository.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery by order")
	}

	return delivery, nil
}

func (srv *deliveryService) ListDeliveries(ctx context.Context, filter usecase.DeliveryFilter) ([]*entity.Delivery, error) {
	var status entity.DeliveryStatus
	if filter.Status != "" && !strings.EqualFold(filter.Status, usecase.StatusFilterAll) {
		status = entity.DeliveryStatus(filter.Status)
		if !status.IsValid() {
			return nil, invalid(fmt.Sprintf("unknown delivery status %q", filter.Status))
		}
	}

	deliveries, err := srv.deliveryRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	if search == "" || len(deliveries) == 0 {
		return deliveries, nil
	}

	shopNames, err := srv.shopNames(ctx, deliveries)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if strings.Contains(strings.ToLower(shopNames[d.ShopID]), search) ||
			strings.Contains(d.OrderID.String(), search) ||
			strings.Contains(strings.ToLower(d.TrackingNumber), search) {
			matched = append(matched, d)
		}
	}

	return matched, nil
}

func (srv *deliveryService) shopNames(ctx context.Context, deliveries []*entity.Delivery) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(deliveries))
	seen := make(map[uuid.UUID]struct{}, len(deliveries))
	for _, d := range deliveries {
		if _, ok := seen[d.ShopID]; !ok {
			seen[d.ShopID] = struct{}{}
			ids = append(ids, d.ShopID)
		}
	}

	shops, err := srv.shopRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shops for delivery search")
	}

	names := make(map[uuid.UUID]string, len(shops))
	for _, shop := range shops {
		names[shop.ID] = shop.Name
	}

	return names, nil
}

func (srv *deliveryService) Summary(ctx context.Context) (*usecase.DeliverySummary, error) {
	counts, err := srv.deliveryRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count deliveries")
	}

	summary := &usecase.DeliverySummary{ByStatus: make(map[entity.DeliveryStatus]int64, len(counts))}
	for _, phase := range entity.DeliveryPhases() {
		n := counts[phase]
		summary.ByStatus[phase] = n
		summary.Total += n

		switch phase {
		case entity.DeliveryStatusTransit, entity.DeliveryStatusShipToOutlet, entity.DeliveryStatusOutForDelivery:
			summary.InTransit += n
		case entity.DeliveryStatusDelivered:
			summary.Delivered += n
		}
	}

	return summary, nil
}

func (srv *deliveryService) TrackingLabel(ctx context.Context, id uuid.UUID) ([]byte, error) {
	delivery, err := srv.GetDelivery(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.labels.GenerateTrackingLabel(delivery)
	if err != nil {
		srv.log(ctx).Error("Failed to render tracking label", slog.String("deliveryID", id.String()), slog.Any("error", err))

		return nil, domainerrors.ErrLabelFailed.WrapMessage(err.Error())
	}

	return png, nil
}

func (srv *deliveryService) ResolveLabel(ctx context.Context, payload string) (*entity.Delivery, error) {
	label, err := srv.labels.ParseTrackingLabel(payload)
	if err != nil {
		return nil, invalid("unreadable tracking label")
	}

	delivery, err := srv.GetDelivery(ctx, label.DeliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.TrackingNumber != label.TrackingNumber {
		return nil, invalid("tracking number on label does not match the delivery")
	}

	return delivery, nil
}
