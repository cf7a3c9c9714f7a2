package repository

import (
	"context"
	"errors"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order lookup matches nothing.
	ErrOrderNotFound = errors.New("order not found")
	// ErrReturnOrderNotFound is returned when a return order lookup matches nothing.
	ErrReturnOrderNotFound = errors.New("return order not found")
)

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// List returns orders newest first, restricted to shopID when non-nil.
	List(ctx context.Context, shopID *uuid.UUID) ([]*entity.Order, error)
	// UpdateDiscount persists discount code, discount amount and final amount.
	UpdateDiscount(ctx context.Context, order *entity.Order) error
}

// ReturnOrderRepository persists return orders.
type ReturnOrderRepository interface {
	Create(ctx context.Context, returnOrder *entity.ReturnOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReturnOrder, error)
	List(ctx context.Context, shopID *uuid.UUID) ([]*entity.ReturnOrder, error)
}
