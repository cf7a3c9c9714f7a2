package handler

import (
	"net/http"
	"testing"
	"time"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	mockusecase "snackbasket/internal/mocks/usecase"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newShopTestEcho(uc usecase.ShopUsecase) (*ShopHandler, *echo.Echo) {
	h := NewShopHandler(ShopHandlerParams{ShopUC: uc})
	e := newTestEcho()
	e.POST("/api/shops", h.CreateShop)
	e.GET("/api/shops", h.ListShops)
	e.GET("/api/shops/nearby", h.NearbyShops)
	e.POST("/api/shops/refresh-status", h.RefreshStatus)
	e.GET("/api/shops/:id", h.GetShop)
	e.DELETE("/api/shops/:id", h.DeleteShop)
	e.GET("/api/geocode/reverse", h.ReverseGeocode)

	return h, e
}

func TestShopHandler_CreateShop(t *testing.T) {
	uc := mockusecase.NewMockShopUsecase(t)
	_, e := newShopTestEcho(uc)

	lat, lon := 19.07, 72.87
	uc.EXPECT().CreateShop(mock.Anything, &usecase.CreateShopInput{
		Name:        "Corner Store",
		PhoneNumber: "+91 98765-43210",
		Category:    "retailer",
		Latitude:    &lat,
		Longitude:   &lon,
	}).Return(&entity.Shop{ID: uuid.New(), Name: "Corner Store", IsNew: true}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/api/shops", map[string]any{
		"name":         "Corner Store",
		"phone_number": "+91 98765-43210",
		"category":     "retailer",
		"latitude":     lat,
		"longitude":    lon,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeData[entity.Shop](t, env).IsNew)
}

func TestShopHandler_CreateShopValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"phone_number": "12345", "category": "retailer", "location": "x"}},
		{"bad phone", map[string]any{"name": "A", "phone_number": "call me", "category": "retailer", "location": "x"}},
		{"bad category", map[string]any{"name": "A", "phone_number": "12345", "category": "kiosk", "location": "x"}},
		{"latitude out of range", map[string]any{"name": "A", "phone_number": "12345", "category": "retailer", "latitude": 91.0, "longitude": 0.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockShopUsecase(t)
			_, e := newShopTestEcho(uc)

			rec, env := doRequest(t, e, http.MethodPost, "/api/shops", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestShopHandler_NearbyShops(t *testing.T) {
	uc := mockusecase.NewMockShopUsecase(t)
	_, e := newShopTestEcho(uc)

	radius := 2.5
	shop := &entity.Shop{ID: uuid.New(), Name: "Near"}
	uc.EXPECT().FindShopsNear(mock.Anything, &usecase.NearbyShopsInput{Latitude: 10, Longitude: 20, RadiusKm: &radius}).
		Return([]*usecase.NearbyShop{{Shop: shop, DistanceKm: 1.2}}, nil)
	uc.EXPECT().FindShopsNear(mock.Anything, &usecase.NearbyShopsInput{Latitude: 10, Longitude: 20}).
		Return([]*usecase.NearbyShop{}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/shops/nearby?lat=10&lon=20&radiusKm=2.5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]usecase.NearbyShop](t, env)
	if assert.Len(t, got, 1) {
		assert.Equal(t, shop.ID, got[0].Shop.ID)
		assert.InDelta(t, 1.2, got[0].DistanceKm, 1e-9)
	}

	rec, _ = doRequest(t, e, http.MethodGet, "/api/shops/nearby?lat=10&lon=20", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doRequest(t, e, http.MethodGet, "/api/shops/nearby?lon=20", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Details, "lat")

	rec, _ = doRequest(t, e, http.MethodGet, "/api/shops/nearby?lat=x&lon=20", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShopHandler_NearbyShopsRejectsNonFinite(t *testing.T) {
	uc := mockusecase.NewMockShopUsecase(t)
	_, e := newShopTestEcho(uc)

	for _, query := range []string{
		"lat=NaN&lon=0&radiusKm=NaN",
		"lat=0&lon=Inf",
		"lat=0&lon=0&radiusKm=-Inf",
	} {
		rec, env := doRequest(t, e, http.MethodGet, "/api/shops/nearby?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Contains(t, env.Error.Details, "finite", query)
	}
}

func TestShopHandler_RefreshStatus(t *testing.T) {
	uc := mockusecase.NewMockShopUsecase(t)
	h, e := newShopTestEcho(uc)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	uc.EXPECT().RefreshNewFlags(mock.Anything, now).Return(int64(3), nil)

	rec, env := doRequest(t, e, http.MethodPost, "/api/shops/refresh-status", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), decodeData[RefreshStatusResponse](t, env).Updated)
}

func TestShopHandler_GetAndDelete(t *testing.T) {
	uc := mockusecase.NewMockShopUsecase(t)
	_, e := newShopTestEcho(uc)

	id := uuid.New()
	uc.EXPECT().GetShop(mock.Anything, id).Return(nil, domainerrors.ErrShopNotFound.WithDetails(id.String()))
	uc.EXPECT().DeleteShop(mock.Anything, id).Return(nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/shops/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SHOP_NOT_FOUND", env.Error.Code)
	assert.Equal(t, id.String(), env.Error.Details)

	rec, env = doRequest(t, e, http.MethodDelete, "/api/shops/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestShopHandler_ReverseGeocode(t *testing.T) {
	uc := mockusecase.NewMockShopUsecase(t)
	_, e := newShopTestEcho(uc)

	uc.EXPECT().ReverseGeocode(mock.Anything, 1.5, 2.5).Return("Main Road, Pune", nil)
	uc.EXPECT().ReverseGeocode(mock.Anything, 0.0, 0.0).Return("", domainerrors.ErrGeocodingFailed)

	rec, env := doRequest(t, e, http.MethodGet, "/api/geocode/reverse?lat=1.5&lon=2.5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Main Road, Pune", decodeData[ReverseGeocodeResponse](t, env).Address)

	rec, env = doRequest(t, e, http.MethodGet, "/api/geocode/reverse?lat=0&lon=0", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, env.Error.Details)
}
