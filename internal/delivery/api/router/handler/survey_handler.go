package handler

import (
	"snackbasket/internal/delivery/api/response"
	"snackbasket/internal/domain/entity"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SurveyHandler serves customer surveys.
type SurveyHandler struct {
	uc usecase.SurveyUsecase
}

// SurveyHandlerParams holds dependencies for SurveyHandler, injected by Fx.
type SurveyHandlerParams struct {
	fx.In

	SurveyUC usecase.SurveyUsecase
}

// NewSurveyHandler is the constructor for SurveyHandler.
func NewSurveyHandler(params SurveyHandlerParams) *SurveyHandler {
	return &SurveyHandler{uc: params.SurveyUC}
}

// SubmitSurveyRequest is a filled-in survey. Rating bounds are checked by the usecase.
type SubmitSurveyRequest struct {
	ShopID          *uuid.UUID           `json:"shop_id"`
	RespondentName  string               `json:"respondent_name" validate:"required"`
	RespondentPhone string               `json:"respondent_phone" validate:"omitempty,phone"`
	Ratings         entity.SurveyRatings `json:"ratings"`
	Feedback        string               `json:"feedback"`
	Concerns        []string             `json:"concerns"`
}

// SubmitSurvey stores a survey.
func (h *SurveyHandler) SubmitSurvey(c echo.Context) error {
	var req SubmitSurveyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	survey, err := h.uc.SubmitSurvey(c.Request().Context(), &usecase.SubmitSurveyInput{
		ShopID:          req.ShopID,
		RespondentName:  req.RespondentName,
		RespondentPhone: req.RespondentPhone,
		Ratings:         req.Ratings,
		Feedback:        req.Feedback,
		Concerns:        req.Concerns,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, survey, "Survey submitted")
}

// ListSurveys returns surveys, optionally of one shop.
func (h *SurveyHandler) ListSurveys(c echo.Context) error {
	shopID, err := optionalUUIDQuery(c, "shopId")
	if err != nil {
		return err
	}

	surveys, err := h.uc.ListSurveys(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, surveys)
}

// GetSurvey returns one survey.
func (h *SurveyHandler) GetSurvey(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	survey, err := h.uc.GetSurvey(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, survey)
}
