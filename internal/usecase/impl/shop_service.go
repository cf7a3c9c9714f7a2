package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"snackbasket/config"
	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/domain/service"
	"snackbasket/internal/errors"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type shopService struct {
	shopRepo  repository.ShopRepository
	geocoder  service.ReverseGeocoder
	newWindow time.Duration
	radius    float64
	maxRadius float64
	now       func() time.Time
	logger    *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	Geocoder service.ReverseGeocoder `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

// NewShopService creates the shop usecase.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	window := params.Config.Shop.NewShopWindow
	if window <= 0 {
		window = entity.NewShopWindow
	}

	return &shopService{
		shopRepo:  params.ShopRepo,
		geocoder:  params.Geocoder,
		newWindow: window,
		radius:    params.Config.Shop.DefaultRadiusKm,
		maxRadius: params.Config.Shop.MaxRadiusKm,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shopService) CreateShop(ctx context.Context, input *usecase.CreateShopInput) (*entity.Shop, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid("name is required")
	}

	phone := strings.TrimSpace(input.PhoneNumber)
	if phone == "" {
		return nil, invalid("phone number is required")
	}
	if !entity.IsValidPhoneNumber(phone) {
		return nil, invalid("phone number may only contain digits, spaces and + - ( )")
	}

	category, ok := entity.ParseShopCategory(input.Category)
	if !ok {
		return nil, invalid("category must be retailer or wholesaler")
	}

	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, invalid("latitude and longitude must be given together")
	}
	hasCoordinates := input.Latitude != nil
	if hasCoordinates {
		if err := validateCoordinates(*input.Latitude, *input.Longitude); err != nil {
			return nil, err
		}
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		if !hasCoordinates {
			return nil, invalid("location is required when coordinates are not given")
		}
		location = srv.resolveLocation(ctx, *input.Latitude, *input.Longitude)
	}

	now := srv.now()
	shop := &entity.Shop{
		ID:          uuid.New(),
		Name:        name,
		Location:    location,
		PhoneNumber: phone,
		Category:    category,
		IsNew:       true,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		srv.log(ctx).Error("Failed to create shop", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create shop")
	}

	srv.log(ctx).Info("Shop created", slog.String("shopID", shop.ID.String()), slog.String("category", category.String()))

	return shop, nil
}

// resolveLocation reverse-geocodes the coordinates, falling back to a
// formatted coordinate string when no address is available.
func (srv *shopService) resolveLocation(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("Location (%.6f, %.6f)", lat, lon)
	if srv.geocoder == nil {
		return fallback
	}

	address, err := srv.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil || strings.TrimSpace(address) == "" {
		srv.log(ctx).Warn("Reverse geocoding unavailable, using coordinates",
			slog.Float64("lat", lat), slog.Float64("lon", lon), slog.Any("error", err))

		return fallback
	}

	return address
}

func (srv *shopService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

func (srv *shopService) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

func (srv *shopService) DeleteShop(ctx context.Context, id uuid.UUID) error {
	err := srv.shopRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrShopNotFound) {
		return domainerrors.ErrShopNotFound.WithDetails(id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete shop")
	}

	srv.log(ctx).Info("Shop deleted", slog.String("shopID", id.String()))

	return nil
}

func (srv *shopService) FindShopsNear(ctx context.Context, input *usecase.NearbyShopsInput) ([]*usecase.NearbyShop, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	radius := srv.radius
	if input.RadiusKm != nil {
		radius = *input.RadiusKm
	}
	if !isFinite(radius) {
		return nil, invalid("radius must be a finite number")
	}
	if radius < 0 {
		return nil, invalid("radius must not be negative")
	}
	if srv.maxRadius > 0 && radius > srv.maxRadius {
		return nil, invalid(fmt.Sprintf("radius must not exceed %.1f km", srv.maxRadius))
	}

	center := entity.NewGeoPoint(input.Latitude, input.Longitude)

	var (
		candidates []*entity.Shop
		err        error
	)
	if bound, ok := center.BoundAround(radius); ok {
		candidates, err = srv.shopRepo.FindWithinBound(ctx, bound)
	} else {
		candidates, err = srv.shopRepo.FindWithCoordinates(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop candidates")
	}

	nearby := make([]*usecase.NearbyShop, 0, len(candidates))
	for _, shop := range candidates {
		point, ok := shop.Point()
		if !ok {
			continue
		}
		if distance := center.DistanceKm(point); distance <= radius {
			nearby = append(nearby, &usecase.NearbyShop{Shop: shop, DistanceKm: distance})
		}
	}

	slices.SortStableFunc(nearby, func(a, b *usecase.NearbyShop) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	return nearby, nil
}

func (srv *shopService) RefreshNewFlags(ctx context.Context, now time.Time) (int64, error) {
	if now.IsZero() {
		now = srv.now()
	}

	updated, err := srv.shopRepo.ClearNewFlagBefore(ctx, now.Add(-srv.newWindow))
	if err != nil {
		return 0, errors.Wrap(err, "failed to refresh new shop flags")
	}

	srv.log(ctx).Info("Refreshed new shop flags", slog.Int64("updated", updated))

	return updated, nil
}

func (srv *shopService) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return "", err
	}
	if srv.geocoder == nil {
		return "", domainerrors.ErrGeocodingFailed.WithDetails("no geocoder configured")
	}

	address, err := srv.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		srv.log(ctx).Warn("Reverse geocoding failed", slog.Any("error", err))

		return "", domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}

	return address, nil
}
