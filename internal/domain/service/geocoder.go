package service

import "context"

// ReverseGeocoder turns coordinates into a display address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}
