package handler

import (
	"net/http"
	"time"

	"snackbasket/internal/delivery/api/response"
	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/entity"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeliveryHandler serves delivery tracking.
type DeliveryHandler struct {
	uc usecase.DeliveryUsecase
}

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler.
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{uc: params.DeliveryUC}
}

// CreateDeliveryRequest is the payload for a manually created delivery.
type CreateDeliveryRequest struct {
	OrderID               uuid.UUID  `json:"order_id" validate:"required"`
	ShopID                uuid.UUID  `json:"shop_id" validate:"required"`
	Status                string     `json:"status"`
	CurrentLocation       string     `json:"current_location"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
	TrackingNumber        string     `json:"tracking_number"`
	Notes                 string     `json:"notes"`
}

// UpdateStatusRequest moves a delivery to status.
type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required"`
	Notes    string `json:"notes"`
	Location string `json:"location"`
}

// AdvanceRequest moves a delivery to its next phase.
type AdvanceRequest struct {
	Notes    string `json:"notes"`
	Location string `json:"location"`
}

// ScanRequest carries the text decoded from a tracking label.
type ScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// DeliveryResponse is a delivery plus the phase it would advance to.
type DeliveryResponse struct {
	*entity.Delivery
	NextStatus *entity.DeliveryStatus `json:"next_status,omitempty"`
}

func toDeliveryResponse(d *entity.Delivery) *DeliveryResponse {
	resp := &DeliveryResponse{Delivery: d}
	if next, ok := d.NextStatus(); ok {
		resp.NextStatus = &next
	}

	return resp
}

func toDeliveryResponses(ds []*entity.Delivery) []*DeliveryResponse {
	out := make([]*DeliveryResponse, len(ds))
	for i, d := range ds {
		out[i] = toDeliveryResponse(d)
	}

	return out
}

// CreateDelivery records a delivery for an order.
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	delivery, err := h.uc.CreateDelivery(c.Request().Context(), &usecase.CreateDeliveryInput{
		OrderID:               req.OrderID,
		ShopID:                req.ShopID,
		Status:                req.Status,
		CurrentLocation:       req.CurrentLocation,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		TrackingNumber:        req.TrackingNumber,
		Notes:                 req.Notes,
		UpdatedBy:             deliverycontext.UserName(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toDeliveryResponse(delivery), "Delivery created")
}

// CreateFromOrder returns the order's delivery, creating it if needed.
func (h *DeliveryHandler) CreateFromOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}

	delivery, err := h.uc.CreateDeliveryFromOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDeliveryResponse(delivery))
}

// ListDeliveries filters deliveries by search text and status.
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	deliveries, err := h.uc.ListDeliveries(c.Request().Context(), usecase.DeliveryFilter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDeliveryResponses(deliveries))
}

// Summary returns per-phase delivery counts.
func (h *DeliveryHandler) Summary(c echo.Context) error {
	summary, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, summary)
}

// GetDelivery returns one delivery.
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	delivery, err := h.uc.GetDelivery(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDeliveryResponse(delivery))
}

// GetByOrder returns the delivery of an order.
func (h *DeliveryHandler) GetByOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}

	delivery, err := h.uc.GetDeliveryByOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDeliveryResponse(delivery))
}

// UpdateStatus moves a delivery to the requested status.
func (h *DeliveryHandler) UpdateStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	delivery, err := h.uc.Advance(c.Request().Context(), id, &usecase.AdvanceDeliveryInput{
		Status:    req.Status,
		Notes:     req.Notes,
		Location:  req.Location,
		UpdatedBy: deliverycontext.UserName(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDeliveryResponse(delivery))
}

// Advance moves a delivery to its next phase.
func (h *DeliveryHandler) Advance(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AdvanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	delivery, err := h.uc.AdvanceToNext(c.Request().Context(), id, &usecase.AdvanceDeliveryInput{
		Notes:     req.Notes,
		Location:  req.Location,
		UpdatedBy: deliverycontext.UserName(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDeliveryResponse(delivery))
}

// Label renders the delivery's tracking label as a PNG QR code.
func (h *DeliveryHandler) Label(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.TrackingLabel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Scan resolves a scanned tracking label to its delivery.
func (h *DeliveryHandler) Scan(c echo.Context) error {
	var req ScanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	delivery, err := h.uc.ResolveLabel(c.Request().Context(), req.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDeliveryResponse(delivery))
}
