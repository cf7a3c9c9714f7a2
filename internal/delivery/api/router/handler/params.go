// Package handler contains the HTTP handlers for the API.
package handler

import (
	"math"
	"strconv"
	"strings"

	"snackbasket/internal/delivery/api/response"
	domainerrors "snackbasket/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// uuidParam parses the named path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// optionalUUIDQuery parses the named query parameter, returning nil when absent.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return &id, nil
}

// floatQuery parses a required numeric query parameter.
func floatQuery(c echo.Context, name string) (float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " is required")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a finite number")
	}

	return v, nil
}

// optionalFloatQuery parses a numeric query parameter, returning nil when absent.
func optionalFloatQuery(c echo.Context, name string) (*float64, error) {
	if strings.TrimSpace(c.QueryParam(name)) == "" {
		return nil, nil
	}

	v, err := floatQuery(c, name)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
