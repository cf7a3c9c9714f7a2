package repository

import (
	"context"
	"errors"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrDeliveryNotFound is returned when a delivery lookup matches nothing.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrDeliveryExists is returned when a second delivery is inserted for an order.
	ErrDeliveryExists = errors.New("delivery already exists for order")
)

// DeliveryRepository persists deliveries and their status history.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error)
	// List returns deliveries newest first, restricted to status when non-empty.
	List(ctx context.Context, status entity.DeliveryStatus) ([]*entity.Delivery, error)
	// Update persists status, location, dates, notes and history.
	Update(ctx context.Context, delivery *entity.Delivery) error
	CountByStatus(ctx context.Context) (map[entity.DeliveryStatus]int64, error)
}
