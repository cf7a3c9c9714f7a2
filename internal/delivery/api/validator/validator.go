// Package validator plugs go-playground/validator into echo.
package validator

import (
	"strings"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator implements echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator with the custom tags registered:
// "phone" and "shopcategory", matching the entity rules.
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return entity.IsValidPhoneNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("shopcategory", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseShopCategory(fl.Field().String())

		return ok
	})

	return &requestValidator{validate: v}
}

// Validate returns ErrValidationFailed listing the failing fields.
func (rv *requestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fe.Field() + " failed '" + fe.Tag() + "'"
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		msgs = append(msgs, msg)
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, "; "))
}
