package usecase

import (
	"context"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

// LineItemInput references a catalog SKU by id.
type LineItemInput struct {
	SKUID    string
	Quantity int
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	ShopID       uuid.UUID
	Items        []LineItemInput
	DiscountCode string
}

// CreateReturnOrderInput defines the data required to record a return.
type CreateReturnOrderInput struct {
	ShopID        uuid.UUID
	Items         []LineItemInput
	LinkedOrderID *uuid.UUID
	ReasonCode    string
	Notes         string
}

// OrderUsecase defines order and return order operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	ApplyDiscount(ctx context.Context, orderID uuid.UUID, code string) (*entity.Order, error)
	ListOrders(ctx context.Context, shopID *uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	CreateReturnOrder(ctx context.Context, input *CreateReturnOrderInput) (*entity.ReturnOrder, error)
	ListReturnOrders(ctx context.Context, shopID *uuid.UUID) ([]*entity.ReturnOrder, error)
	GetReturnOrder(ctx context.Context, id uuid.UUID) (*entity.ReturnOrder, error)
}
