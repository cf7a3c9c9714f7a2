package handler

import (
	"net/http"
	"testing"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	mockusecase "snackbasket/internal/mocks/usecase"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDeliveryTestEcho(uc usecase.DeliveryUsecase, userID uuid.UUID) *echo.Echo {
	h := NewDeliveryHandler(DeliveryHandlerParams{DeliveryUC: uc})
	e := newTestEcho()
	g := e.Group("/api/deliveries", asUser(userID, entity.RoleEmployee.String()))
	g.POST("", h.CreateDelivery)
	g.GET("", h.ListDeliveries)
	g.GET("/summary", h.Summary)
	g.POST("/scan", h.Scan)
	g.POST("/from-order/:orderId", h.CreateFromOrder)
	g.GET("/by-order/:orderId", h.GetByOrder)
	g.GET("/:id", h.GetDelivery)
	g.POST("/:id/status", h.UpdateStatus)
	g.POST("/:id/advance", h.Advance)
	g.GET("/:id/label.png", h.Label)

	return e
}

func TestDeliveryHandler_CreateDelivery(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	userID := uuid.New()
	e := newDeliveryTestEcho(uc, userID)

	orderID, shopID := uuid.New(), uuid.New()
	uc.EXPECT().CreateDelivery(mock.Anything, mock.MatchedBy(func(in *usecase.CreateDeliveryInput) bool {
		return in.OrderID == orderID && in.ShopID == shopID && in.TrackingNumber == "TR-123456" &&
			in.UpdatedBy == userID.String()
	})).Return(&entity.Delivery{ID: uuid.New(), OrderID: orderID, TrackingNumber: "TR-123456"}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/api/deliveries", map[string]any{
		"order_id":        orderID,
		"shop_id":         shopID,
		"tracking_number": "TR-123456",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "TR-123456", decodeData[entity.Delivery](t, env).TrackingNumber)
}

func TestDeliveryHandler_CreateDeliveryConflict(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	e := newDeliveryTestEcho(uc, uuid.New())

	uc.EXPECT().CreateDelivery(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDeliveryAlreadyExists)

	rec, env := doRequest(t, e, http.MethodPost, "/api/deliveries", map[string]any{
		"order_id": uuid.New(),
		"shop_id":  uuid.New(),
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DELIVERY_ALREADY_EXISTS", env.Error.Code)
}

func TestDeliveryHandler_CreateFromOrder(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	e := newDeliveryTestEcho(uc, uuid.New())

	orderID := uuid.New()
	uc.EXPECT().CreateDeliveryFromOrder(mock.Anything, orderID).
		Return(&entity.Delivery{ID: uuid.New(), OrderID: orderID, Status: entity.DeliveryStatusPackaging}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/api/deliveries/from-order/"+orderID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[DeliveryResponse](t, env)
	assert.Equal(t, orderID, got.OrderID)
	if assert.NotNil(t, got.NextStatus) {
		assert.Equal(t, entity.DeliveryStatusTransit, *got.NextStatus)
	}
}

func TestDeliveryHandler_ListAndSummary(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	e := newDeliveryTestEcho(uc, uuid.New())

	uc.EXPECT().ListDeliveries(mock.Anything, usecase.DeliveryFilter{Search: "corner", Status: "Transit"}).
		Return([]*entity.Delivery{{ID: uuid.New()}}, nil)
	uc.EXPECT().Summary(mock.Anything).Return(&usecase.DeliverySummary{Total: 4, InTransit: 1, Delivered: 2}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/deliveries?search=corner&status=Transit", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Delivery](t, env), 1)

	rec, env = doRequest(t, e, http.MethodGet, "/api/deliveries/summary", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	summary := decodeData[usecase.DeliverySummary](t, env)
	assert.Equal(t, int64(4), summary.Total)
	assert.Equal(t, int64(2), summary.Delivered)
}

func TestDeliveryHandler_UpdateStatus(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	userID := uuid.New()
	e := newDeliveryTestEcho(uc, userID)

	id := uuid.New()
	uc.EXPECT().Advance(mock.Anything, id, &usecase.AdvanceDeliveryInput{
		Status:    "Delivered",
		Notes:     "left at counter",
		Location:  "Shop",
		UpdatedBy: userID.String(),
	}).Return(&entity.Delivery{ID: id, Status: entity.DeliveryStatusDelivered}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/api/deliveries/"+id.String()+"/status", map[string]string{
		"status":   "Delivered",
		"notes":    "left at counter",
		"location": "Shop",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	delivered := decodeData[DeliveryResponse](t, env)
	assert.Equal(t, entity.DeliveryStatusDelivered, delivered.Status)
	assert.Nil(t, delivered.NextStatus)

	rec, _ = doRequest(t, e, http.MethodPost, "/api/deliveries/"+id.String()+"/status", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeliveryHandler_Advance(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	userID := uuid.New()
	e := newDeliveryTestEcho(uc, userID)

	id := uuid.New()
	uc.EXPECT().AdvanceToNext(mock.Anything, id, &usecase.AdvanceDeliveryInput{UpdatedBy: userID.String()}).
		Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("delivery is already delivered"))

	rec, env := doRequest(t, e, http.MethodPost, "/api/deliveries/"+id.String()+"/advance", map[string]string{})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
	assert.Equal(t, "delivery is already delivered", env.Error.Details)
}

func TestDeliveryHandler_Label(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	e := newDeliveryTestEcho(uc, uuid.New())

	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().TrackingLabel(mock.Anything, id).Return(png, nil)

	rec, _ := doRequest(t, e, http.MethodGet, "/api/deliveries/"+id.String()+"/label.png", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestDeliveryHandler_Scan(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	e := newDeliveryTestEcho(uc, uuid.New())

	d := &entity.Delivery{ID: uuid.New(), TrackingNumber: "TR-654321"}
	uc.EXPECT().ResolveLabel(mock.Anything, "payload-text").Return(d, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/api/deliveries/scan", map[string]string{"payload": "payload-text"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, d.ID, decodeData[entity.Delivery](t, env).ID)
}

func TestDeliveryHandler_Lookups(t *testing.T) {
	uc := mockusecase.NewMockDeliveryUsecase(t)
	e := newDeliveryTestEcho(uc, uuid.New())

	id, orderID := uuid.New(), uuid.New()
	uc.EXPECT().GetDelivery(mock.Anything, id).Return(nil, domainerrors.ErrDeliveryNotFound)
	uc.EXPECT().GetDeliveryByOrder(mock.Anything, orderID).Return(&entity.Delivery{ID: id, OrderID: orderID}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/deliveries/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DELIVERY_NOT_FOUND", env.Error.Code)

	rec, env = doRequest(t, e, http.MethodGet, "/api/deliveries/by-order/"+orderID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decodeData[entity.Delivery](t, env).ID)
}
