package handler

import (
	"snackbasket/internal/delivery/api/response"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandler serves orders and return orders.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{uc: params.OrderUC}
}

// LineItemRequest selects a quantity of one catalog product.
type LineItemRequest struct {
	SKUID    string `json:"sku_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	ShopID       uuid.UUID         `json:"shop_id" validate:"required"`
	Items        []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountCode string            `json:"discount_code"`
}

// ApplyDiscountRequest carries the code to apply.
type ApplyDiscountRequest struct {
	DiscountCode string `json:"discountCode" validate:"required"`
}

// CreateReturnOrderRequest is the payload for recording a return.
type CreateReturnOrderRequest struct {
	ShopID        uuid.UUID         `json:"shop_id" validate:"required"`
	Items         []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	LinkedOrderID *uuid.UUID        `json:"linked_order_id"`
	ReasonCode    string            `json:"reason_code"`
	Notes         string            `json:"notes"`
}

func toLineItemInputs(items []LineItemRequest) []usecase.LineItemInput {
	inputs := make([]usecase.LineItemInput, len(items))
	for i, item := range items {
		inputs[i] = usecase.LineItemInput{SKUID: item.SKUID, Quantity: item.Quantity}
	}

	return inputs
}

// CreateOrder places an order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		ShopID:       req.ShopID,
		Items:        toLineItemInputs(req.Items),
		DiscountCode: req.DiscountCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, order, "Order placed")
}

// ListOrders returns orders, optionally of one shop.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	shopID, err := optionalUUIDQuery(c, "shopId")
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, orders)
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// ApplyDiscount sets the discount code of an order and reprices it.
func (h *OrderHandler) ApplyDiscount(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ApplyDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.uc.ApplyDiscount(c.Request().Context(), id, req.DiscountCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

// CreateReturnOrder records a return.
func (h *OrderHandler) CreateReturnOrder(c echo.Context) error {
	var req CreateReturnOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ret, err := h.uc.CreateReturnOrder(c.Request().Context(), &usecase.CreateReturnOrderInput{
		ShopID:        req.ShopID,
		Items:         toLineItemInputs(req.Items),
		LinkedOrderID: req.LinkedOrderID,
		ReasonCode:    req.ReasonCode,
		Notes:         req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, ret, "Return order recorded")
}

// ListReturnOrders returns return orders, optionally of one shop.
func (h *OrderHandler) ListReturnOrders(c echo.Context) error {
	shopID, err := optionalUUIDQuery(c, "shopId")
	if err != nil {
		return err
	}

	returns, err := h.uc.ListReturnOrders(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, returns)
}

// GetReturnOrder returns one return order.
func (h *OrderHandler) GetReturnOrder(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	ret, err := h.uc.GetReturnOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, ret)
}
