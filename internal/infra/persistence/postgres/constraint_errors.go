package postgres

import (
	"strings"

	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/errors"

	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// isUniqueConstraintViolation matches gorm.ErrDuplicatedKey, which only
// appears when TranslateError is on, and otherwise falls back to the SQLSTATE.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// translateWriteError maps constraint failures on insert or update to
// validation or database AppErrors. Unique violations are left to callers
// because each table means something different by them.
func translateWriteError(err error, action string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(action + ": invalid reference")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(action + ": missing required field")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(action + ": value out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to "+action)
	}
}
