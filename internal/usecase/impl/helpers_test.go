package impl

import (
	"io"
	"log/slog"
	"time"

	"snackbasket/config"
	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Shop: config.ShopConfig{
			NewShopWindow:   entity.NewShopWindow,
			DefaultRadiusKm: 5,
			MaxRadiusKm:     100,
		},
		Order: config.OrderConfig{DiscountRate: 0.10},
		Delivery: config.DeliveryConfig{
			InitialLocation:   "Warehouse",
			EstimatedLeadTime: 72 * time.Hour,
			TrackingPrefix:    "TR",
		},
	}
}

func ptr[T any](v T) *T { return &v }

func newTestShop(name string, lat, lon float64) *entity.Shop {
	return &entity.Shop{
		ID:        uuid.New(),
		Name:      name,
		Category:  entity.ShopCategoryRetailer,
		Latitude:  ptr(lat),
		Longitude: ptr(lon),
		CreatedAt: testNow,
	}
}
