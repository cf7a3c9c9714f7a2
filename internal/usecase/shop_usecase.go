package usecase

import (
	"context"
	"time"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShopInput defines the data required to register a shop.
type CreateShopInput struct {
	Name        string
	Location    string // Optional when coordinates are given.
	PhoneNumber string
	Category    string
	Latitude    *float64
	Longitude   *float64
}

// NearbyShopsInput is a proximity query around a point.
type NearbyShopsInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  *float64 // Nil uses the configured default radius.
}

// NearbyShop pairs a shop with its distance from the query point.
type NearbyShop struct {
	Shop       *entity.Shop `json:"shop"`
	DistanceKm float64      `json:"distance_km"`
}

// ShopUsecase defines shop registration and lookup.
type ShopUsecase interface {
	CreateShop(ctx context.Context, input *CreateShopInput) (*entity.Shop, error)
	ListShops(ctx context.Context) ([]*entity.Shop, error)
	GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	DeleteShop(ctx context.Context, id uuid.UUID) error
	// FindShopsNear returns shops within the radius ordered by distance.
	FindShopsNear(ctx context.Context, input *NearbyShopsInput) ([]*NearbyShop, error)
	// RefreshNewFlags clears the new badge on shops older than the new-shop window at now.
	RefreshNewFlags(ctx context.Context, now time.Time) (int64, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}
