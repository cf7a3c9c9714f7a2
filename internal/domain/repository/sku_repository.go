package repository

import (
	"context"
	"errors"

	"snackbasket/internal/domain/entity"
)

// ErrSKUNotFound is returned when a SKU lookup matches nothing.
var ErrSKUNotFound = errors.New("sku not found")

// SKURepository persists the product catalog.
type SKURepository interface {
	// List returns the catalog ordered by SKU id.
	List(ctx context.Context) ([]*entity.SKU, error)
	FindByID(ctx context.Context, id string) (*entity.SKU, error)
	// FindByIDs returns the SKUs that exist among ids.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.SKU, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, skus []*entity.SKU) error
}
