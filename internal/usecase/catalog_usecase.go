// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"snackbasket/internal/domain/entity"
)

// CatalogUsecase exposes the read-only product catalog.
type CatalogUsecase interface {
	// ListSKUs returns the catalog, seeding the default products first when it is empty.
	ListSKUs(ctx context.Context) ([]*entity.SKU, error)
	GetSKU(ctx context.Context, id string) (*entity.SKU, error)
}
