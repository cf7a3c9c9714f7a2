package handler

import (
	"snackbasket/internal/delivery/api/response"
	"snackbasket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandler serves the product catalog.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{uc: params.CatalogUC}
}

// ListSKUs returns the catalog.
func (h *CatalogHandler) ListSKUs(c echo.Context) error {
	skus, err := h.uc.ListSKUs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, skus)
}

// GetSKU returns one catalog product.
func (h *CatalogHandler) GetSKU(c echo.Context) error {
	sku, err := h.uc.GetSKU(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, sku)
}
