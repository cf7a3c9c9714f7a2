package handler

import (
	"net/http"
	"time"

	"snackbasket/internal/delivery/api/response"
	"snackbasket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShopHandler serves shop registration, lookup and reverse geocoding.
type ShopHandler struct {
	uc  usecase.ShopUsecase
	now func() time.Time
}

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{uc: params.ShopUC, now: time.Now}
}

// CreateShopRequest is the payload for registering a shop. Location may be
// omitted when coordinates are given.
type CreateShopRequest struct {
	Name        string   `json:"name" validate:"required"`
	Location    string   `json:"location"`
	PhoneNumber string   `json:"phone_number" validate:"required,phone"`
	Category    string   `json:"category" validate:"required,shopcategory"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// RefreshStatusResponse reports how many shops lost the new badge.
type RefreshStatusResponse struct {
	Updated int64 `json:"updated"`
}

// ReverseGeocodeResponse carries the resolved address.
type ReverseGeocodeResponse struct {
	Address string `json:"address"`
}

// CreateShop registers a shop.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req CreateShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.uc.CreateShop(c.Request().Context(), &usecase.CreateShopInput{
		Name:        req.Name,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, shop, "Shop registered")
}

// ListShops returns every shop.
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.uc.ListShops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, shops)
}

// GetShop returns one shop.
func (h *ShopHandler) GetShop(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	shop, err := h.uc.GetShop(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, shop)
}

// DeleteShop removes a shop.
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteShop(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shop deleted")
}

// NearbyShops lists shops around lat/lon, nearest first.
func (h *ShopHandler) NearbyShops(c echo.Context) error {
	lat, err := floatQuery(c, "lat")
	if err != nil {
		return err
	}
	lon, err := floatQuery(c, "lon")
	if err != nil {
		return err
	}
	radius, err := optionalFloatQuery(c, "radiusKm")
	if err != nil {
		return err
	}

	shops, err := h.uc.FindShopsNear(c.Request().Context(), &usecase.NearbyShopsInput{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radius,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, shops)
}

// RefreshStatus clears the new badge on shops past the new-shop window.
func (h *ShopHandler) RefreshStatus(c echo.Context) error {
	n, err := h.uc.RefreshNewFlags(c.Request().Context(), h.now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &RefreshStatusResponse{Updated: n})
}

// ReverseGeocode resolves lat/lon to an address.
func (h *ShopHandler) ReverseGeocode(c echo.Context) error {
	lat, err := floatQuery(c, "lat")
	if err != nil {
		return err
	}
	lon, err := floatQuery(c, "lon")
	if err != nil {
		return err
	}

	address, err := h.uc.ReverseGeocode(c.Request().Context(), lat, lon)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &ReverseGeocodeResponse{Address: address})
}
