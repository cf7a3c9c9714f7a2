// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"snackbasket/config"
	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/errors"
	"snackbasket/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	txManager   repository.TransactionManager
	skuRepo     repository.SKURepository
	seedOnEmpty bool
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SKURepo   repository.SKURepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCatalogService creates the catalog usecase.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		skuRepo:     params.SKURepo,
		seedOnEmpty: params.Config.Catalog.SeedCatalog(),
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListSKUs(ctx context.Context) ([]*entity.SKU, error) {
	skus, err := srv.skuRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skus")
	}
	if len(skus) > 0 || !srv.seedOnEmpty {
		return skus, nil
	}

	if err := srv.seedDefaults(ctx); err != nil {
		return nil, err
	}

	skus, err = srv.skuRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skus after seeding")
	}

	return skus, nil
}

// seedDefaults inserts the default catalog in one transaction. A concurrent
// seeder that got there first leaves the count non-zero and nothing is inserted.
func (srv *catalogService) seedDefaults(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewSKURepository()

		count, err := repo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count skus")
		}
		if count > 0 {
			return nil
		}

		defaults := entity.DefaultSKUs()
		skus := make([]*entity.SKU, 0, len(defaults))
		for i := range defaults {
			skus = append(skus, &defaults[i])
		}

		return repo.CreateBatch(ctx, skus)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to seed catalog", slog.Any("error", err))

		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Seeded default catalog")

	return nil
}

func (srv *catalogService) GetSKU(ctx context.Context, id string) (*entity.SKU, error) {
	sku, err := srv.skuRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSKUNotFound) {
		return nil, domainerrors.ErrSKUNotFound.WithDetails(id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sku")
	}

	return sku, nil
}
