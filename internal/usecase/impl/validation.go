package impl

import (
	"math"
	"strings"

	domainerrors "snackbasket/internal/domain/errors"
)

// invalid returns a validation AppError carrying details for the client.
func invalid(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}

func validateCoordinates(lat, lon float64) error {
	if !isFinite(lat) || !isFinite(lon) {
		return invalid("coordinates must be finite numbers")
	}
	if lat < -90 || lat > 90 {
		return invalid("latitude must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return invalid("longitude must be between -180 and 180")
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
