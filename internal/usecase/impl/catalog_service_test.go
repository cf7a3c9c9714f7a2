package impl

import (
	"context"
	"testing"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	mockRepo "snackbasket/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(t *testing.T, seed bool) (*catalogService, *mockRepo.MockSKURepository, *mockRepo.MockTransactionManager) {
	t.Helper()

	skuRepo := mockRepo.NewMockSKURepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cfg := newTestConfig()
	cfg.Catalog.SeedOnEmpty = ptr(seed)

	srv := NewCatalogService(CatalogServiceParams{
		TxManager: txManager,
		SKURepo:   skuRepo,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*catalogService)

	return srv, skuRepo, txManager
}

func TestCatalogService_ListSKUs_ReturnsExisting(t *testing.T) {
	srv, skuRepo, _ := newTestCatalogService(t, true)
	existing := []*entity.SKU{{ID: "SKU001", Price: 250}}

	skuRepo.EXPECT().List(mock.Anything).Return(existing, nil)

	skus, err := srv.ListSKUs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, existing, skus)
}

func TestCatalogService_ListSKUs_SeedsEmptyCatalog(t *testing.T) {
	srv, skuRepo, txManager := newTestCatalogService(t, true)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txSKURepo := mockRepo.NewMockSKURepository(t)
	seeded := []*entity.SKU{{ID: "SKU001"}, {ID: "SKU002"}, {ID: "SKU003"}, {ID: "SKU004"}}

	skuRepo.EXPECT().List(mock.Anything).Return([]*entity.SKU{}, nil).Once()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewSKURepository().Return(txSKURepo)
	txSKURepo.EXPECT().Count(mock.Anything).Return(int64(0), nil)
	txSKURepo.EXPECT().CreateBatch(mock.Anything, mock.MatchedBy(func(skus []*entity.SKU) bool {
		return len(skus) == 4 && skus[0].ID == "SKU001" && skus[0].BoxPrice == 3000
	})).Return(nil)
	skuRepo.EXPECT().List(mock.Anything).Return(seeded, nil).Once()

	skus, err := srv.ListSKUs(context.Background())
	require.NoError(t, err)
	assert.Len(t, skus, 4)
}

func TestCatalogService_ListSKUs_SkipsSeedWhenAlreadySeeded(t *testing.T) {
	srv, skuRepo, txManager := newTestCatalogService(t, true)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txSKURepo := mockRepo.NewMockSKURepository(t)

	skuRepo.EXPECT().List(mock.Anything).Return(nil, nil).Once()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewSKURepository().Return(txSKURepo)
	txSKURepo.EXPECT().Count(mock.Anything).Return(int64(4), nil)
	skuRepo.EXPECT().List(mock.Anything).Return([]*entity.SKU{{ID: "SKU001"}}, nil).Once()

	skus, err := srv.ListSKUs(context.Background())
	require.NoError(t, err)
	assert.Len(t, skus, 1)
}

func TestCatalogService_ListSKUs_SeedDisabled(t *testing.T) {
	srv, skuRepo, _ := newTestCatalogService(t, false)

	skuRepo.EXPECT().List(mock.Anything).Return([]*entity.SKU{}, nil)

	skus, err := srv.ListSKUs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, skus)
}

func TestCatalogService_ListSKUs_SeedFailure(t *testing.T) {
	srv, skuRepo, txManager := newTestCatalogService(t, true)

	skuRepo.EXPECT().List(mock.Anything).Return(nil, nil)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := srv.ListSKUs(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestCatalogService_GetSKU_NotFound(t *testing.T) {
	srv, skuRepo, _ := newTestCatalogService(t, true)

	skuRepo.EXPECT().FindByID(mock.Anything, "SKU999").Return(nil, repository.ErrSKUNotFound)

	_, err := srv.GetSKU(context.Background(), "SKU999")
	assert.ErrorIs(t, err, domainerrors.ErrSKUNotFound)
}
