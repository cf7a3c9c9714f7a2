package usecase

import (
	"context"
	"time"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

// StatusFilterAll disables status filtering in ListDeliveries.
const StatusFilterAll = "all"

// CreateDeliveryInput defines a manually created delivery.
type CreateDeliveryInput struct {
	OrderID               uuid.UUID
	ShopID                uuid.UUID
	Status                string
	CurrentLocation       string
	EstimatedDeliveryDate *time.Time
	TrackingNumber        string
	Notes                 string
	UpdatedBy             string
}

// AdvanceDeliveryInput moves a delivery to a new status.
type AdvanceDeliveryInput struct {
	Status    string
	Notes     string
	Location  string
	UpdatedBy string
}

// DeliveryFilter narrows ListDeliveries. Search matches shop name
// case-insensitively, or order id or tracking number by substring.
type DeliveryFilter struct {
	Search string
	Status string // A phase name, StatusFilterAll or empty.
}

// DeliverySummary is the dashboard count of deliveries per phase.
type DeliverySummary struct {
	Total     int64                           `json:"total"`
	ByStatus  map[entity.DeliveryStatus]int64 `json:"by_status"`
	InTransit int64                           `json:"in_transit"`
	Delivered int64                           `json:"delivered"`
}

// DeliveryUsecase defines delivery tracking operations.
type DeliveryUsecase interface {
	// CreateDeliveryFromOrder returns the existing delivery of the order or creates one.
	CreateDeliveryFromOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error)
	CreateDelivery(ctx context.Context, input *CreateDeliveryInput) (*entity.Delivery, error)
	Advance(ctx context.Context, id uuid.UUID, input *AdvanceDeliveryInput) (*entity.Delivery, error)
	// AdvanceToNext moves the delivery to the phase after its current one.
	AdvanceToNext(ctx context.Context, id uuid.UUID, input *AdvanceDeliveryInput) (*entity.Delivery, error)
	GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)
	GetDeliveryByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error)
	ListDeliveries(ctx context.Context, filter DeliveryFilter) ([]*entity.Delivery, error)
	Summary(ctx context.Context) (*DeliverySummary, error)
	TrackingLabel(ctx context.Context, id uuid.UUID) ([]byte, error)
	// ResolveLabel finds the delivery encoded in a scanned label payload.
	ResolveLabel(ctx context.Context, payload string) (*entity.Delivery, error)
}
