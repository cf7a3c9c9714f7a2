package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"snackbasket/config"
	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/errors"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	shopRepo     repository.ShopRepository
	skuRepo      repository.SKURepository
	orderRepo    repository.OrderRepository
	returnRepo   repository.ReturnOrderRepository
	deliveries   usecase.DeliveryUsecase
	discountRate float64
	autoDelivery bool
	now          func() time.Time
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	ShopRepo        repository.ShopRepository
	SKURepo         repository.SKURepository
	OrderRepo       repository.OrderRepository
	ReturnOrderRepo repository.ReturnOrderRepository
	Deliveries      usecase.DeliveryUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// NewOrderService creates the order usecase.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	rate := params.Config.Order.DiscountRate
	if rate == 0 {
		rate = entity.DefaultDiscountRate
	}

	return &orderService{
		shopRepo:     params.ShopRepo,
		skuRepo:      params.SKURepo,
		orderRepo:    params.OrderRepo,
		returnRepo:   params.ReturnOrderRepo,
		deliveries:   params.Deliveries,
		discountRate: rate,
		autoDelivery: params.Config.Order.AutoDelivery(),
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices the items from the catalog and stores the order. When
// automatic delivery is enabled the delivery is created afterwards in a
// separate step whose failure does not undo the order.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := srv.ensureShop(ctx, input.ShopID); err != nil {
		return nil, err
	}

	items, err := srv.resolveItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(input.ShopID, items, strings.TrimSpace(input.DiscountCode), srv.discountRate, srv.now())
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order", slog.String("shopID", input.ShopID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.Float64("total", order.TotalAmount),
		slog.Float64("final", order.FinalAmount))

	if srv.autoDelivery && srv.deliveries != nil {
		if _, err := srv.deliveries.CreateDeliveryFromOrder(ctx, order.ID); err != nil {
			srv.log(ctx).Warn("Order created without delivery",
				slog.String("orderID", order.ID.String()), slog.Any("error", err))
		}
	}

	return order, nil
}

func (srv *orderService) ApplyDiscount(ctx context.Context, orderID uuid.UUID, code string) (*entity.Order, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, invalid("discount code is required")
	}

	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.ApplyDiscount(code, srv.discountRate)
	order.UpdatedAt = srv.now()

	err = srv.orderRepo.UpdateDiscount(ctx, order)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply discount")
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, shopID *uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// CreateReturnOrder records returned goods. The linked order, if any, is
// stored as given and not checked against its contents.
func (srv *orderService) CreateReturnOrder(ctx context.Context, input *usecase.CreateReturnOrderInput) (*entity.ReturnOrder, error) {
	if err := srv.ensureShop(ctx, input.ShopID); err != nil {
		return nil, err
	}

	items, err := srv.resolveItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	ret := &entity.ReturnOrder{
		ID:            uuid.New(),
		ShopID:        input.ShopID,
		LinkedOrderID: input.LinkedOrderID,
		Items:         items,
		TotalAmount:   items.Total(),
		ReasonCode:    strings.ToUpper(strings.TrimSpace(input.ReasonCode)),
		Notes:         strings.TrimSpace(input.Notes),
		CreatedAt:     srv.now(),
	}

	if err := srv.returnRepo.Create(ctx, ret); err != nil {
		return nil, errors.Wrap(err, "failed to create return order")
	}

	srv.log(ctx).Info("Return order created", slog.String("returnOrderID", ret.ID.String()), slog.String("reason", ret.ReasonCode))

	return ret, nil
}

func (srv *orderService) ListReturnOrders(ctx context.Context, shopID *uuid.UUID) ([]*entity.ReturnOrder, error) {
	returns, err := srv.returnRepo.List(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list return orders")
	}

	return returns, nil
}

func (srv *orderService) GetReturnOrder(ctx context.Context, id uuid.UUID) (*entity.ReturnOrder, error) {
	ret, err := srv.returnRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrReturnOrderNotFound) {
		return nil, domainerrors.ErrReturnOrderNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find return order")
	}

	return ret, nil
}

func (srv *orderService) ensureShop(ctx context.Context, shopID uuid.UUID) error {
	if shopID == uuid.Nil {
		return invalid("shop id is required")
	}

	_, err := srv.shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return domainerrors.ErrShopNotFound.WithDetails(shopID.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to find shop")
	}

	return nil
}

// resolveItems snapshots the referenced SKUs into line items, keeping input order.
func (srv *orderService) resolveItems(ctx context.Context, inputs []usecase.LineItemInput) (entity.LineItems, error) {
	if len(inputs) == 0 {
		return nil, invalid("at least one item is required")
	}

	skuIDs := make([]string, len(inputs))
	ids := make([]string, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for i, in := range inputs {
		id := strings.TrimSpace(in.SKUID)
		if id == "" {
			return nil, invalid("sku id is required")
		}
		if in.Quantity < 1 {
			return nil, invalid("quantity must be at least 1")
		}
		skuIDs[i] = id
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	skus, err := srv.skuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load skus")
	}

	byID := make(map[string]*entity.SKU, len(skus))
	for _, sku := range skus {
		byID[sku.ID] = sku
	}

	items := make(entity.LineItems, 0, len(inputs))
	for i, in := range inputs {
		sku, ok := byID[skuIDs[i]]
		if !ok {
			return nil, domainerrors.ErrSKUNotFound.WithDetails(skuIDs[i])
		}
		items = append(items, entity.LineItem{SKU: *sku, Quantity: in.Quantity})
	}

	return items, nil
}
