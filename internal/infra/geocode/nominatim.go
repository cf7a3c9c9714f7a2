// Package geocode resolves coordinates to display addresses through a
// Nominatim-compatible API.
package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"snackbasket/config"
	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/service"
	"snackbasket/internal/errors"

	"github.com/go-resty/resty/v2"
)

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NominatimClient implements service.ReverseGeocoder.
type NominatimClient struct {
	client *resty.Client
	logger *slog.Logger
}

// NewNominatimClient creates the reverse geocoder from the geocoder config.
func NewNominatimClient(cfg *config.Config, logger *slog.Logger) service.ReverseGeocoder {
	return newNominatimClient(cfg.Geocoder, logger)
}

func newNominatimClient(cfg config.GeocoderConfig, logger *slog.Logger) *NominatimClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	// Nominatim's usage policy requires an identifying User-Agent.
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &NominatimClient{client: client, logger: logger}
}

// ReverseGeocode returns the display name of the place at lat/lon.
func (c *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	var result reverseResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"lat":    strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(lon, 'f', -1, 64),
		}).
		SetResult(&result).
		Get("/reverse")
	if err != nil {
		return "", errors.Wrap(err, "reverse geocoding request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return "", errors.Errorf("reverse geocoding returned status %d", resp.StatusCode())
	}
	if result.Error != "" {
		return "", errors.Errorf("reverse geocoding failed: %s", result.Error)
	}
	if result.DisplayName == "" {
		return "", errors.New("reverse geocoding returned no address")
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Reverse geocoded coordinates",
		slog.Float64("lat", lat), slog.Float64("lon", lon),
		slog.Duration("elapsed", resp.Time()))

	return result.DisplayName, nil
}
