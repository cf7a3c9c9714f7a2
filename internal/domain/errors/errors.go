// Package errors defines the application error taxonomy returned by usecases
// and rendered by the HTTP layer.
package errors

import (
	"net/http"

	"snackbasket/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same business code, so errors created by
// WithDetails still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not found
	ErrShopNotFound        = NewBaseError(http.StatusNotFound, "SHOP_NOT_FOUND", "Shop not found", "")
	ErrSKUNotFound         = NewBaseError(http.StatusNotFound, "SKU_NOT_FOUND", "SKU not found", "")
	ErrOrderNotFound       = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", "")
	ErrReturnOrderNotFound = NewBaseError(http.StatusNotFound, "RETURN_ORDER_NOT_FOUND", "Return order not found", "")
	ErrDeliveryNotFound    = NewBaseError(http.StatusNotFound, "DELIVERY_NOT_FOUND", "Delivery not found", "")
	ErrSurveyNotFound      = NewBaseError(http.StatusNotFound, "SURVEY_NOT_FOUND", "Survey not found", "")
	ErrUserNotFound        = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found", "")

	// Validation
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "")

	// Conflicts
	ErrDeliveryAlreadyExists   = NewBaseError(http.StatusConflict, "DELIVERY_ALREADY_EXISTS", "A delivery already exists for this order", "")
	ErrUserAlreadyExists       = NewBaseError(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered", "")
	ErrInvalidStatusTransition = NewBaseError(http.StatusConflict, "INVALID_STATUS_TRANSITION", "Delivery status transition not allowed", "")

	// Authentication and authorization
	ErrUnauthorized      = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", "")
	ErrIdentityInvalid   = NewBaseError(http.StatusUnauthorized, "IDENTITY_TOKEN_INVALID", "Invalid identity token", "")
	ErrForbidden         = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")
	ErrUserInactive      = NewBaseError(http.StatusForbidden, "USER_INACTIVE", "This account has been deactivated", "")
	ErrTokenIssuanceFail = NewBaseError(http.StatusInternalServerError, "TOKEN_ISSUANCE_FAILED", "Failed to issue session tokens", "")

	// External services
	ErrGeocodingFailed = NewBaseError(http.StatusBadGateway, "GEOCODING_FAILED", "Reverse geocoding failed", "")
	ErrLabelFailed     = NewBaseError(http.StatusInternalServerError, "LABEL_GENERATION_FAILED", "Failed to generate tracking label", "")

	// General errors
	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed", "")
	ErrInternalError     = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
