package handler

import (
	"net/http"
	"testing"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	mockusecase "snackbasket/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogHandler(t *testing.T) {
	uc := mockusecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: uc})
	e := newTestEcho()
	e.GET("/api/skus", h.ListSKUs)
	e.GET("/api/skus/:id", h.GetSKU)
	e.GET("/health", HealthCheck)

	uc.EXPECT().ListSKUs(mock.Anything).Return([]*entity.SKU{{ID: "sku-1"}, {ID: "sku-2"}}, nil)
	uc.EXPECT().GetSKU(mock.Anything, "sku-1").Return(&entity.SKU{ID: "sku-1"}, nil)
	uc.EXPECT().GetSKU(mock.Anything, "nope").Return(nil, domainerrors.ErrSKUNotFound)

	rec, env := doRequest(t, e, http.MethodGet, "/api/skus", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.SKU](t, env), 2)

	rec, _ = doRequest(t, e, http.MethodGet, "/api/skus/sku-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doRequest(t, e, http.MethodGet, "/api/skus/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SKU_NOT_FOUND", env.Error.Code)

	rec, env = doRequest(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}
