package repository

import (
	"context"
	"errors"
	"time"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrShopNotFound is returned when a shop lookup matches nothing.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository persists shops.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	// FindByIDs returns the shops that exist among ids. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Shop, error)
	// List returns every shop, newest first.
	List(ctx context.Context) ([]*entity.Shop, error)
	// FindWithinBound returns shops with coordinates inside bound. A bound
	// crossing the antimeridian is not supported and must be split by the caller.
	FindWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Shop, error)
	// FindWithCoordinates returns every shop that has both coordinates set.
	FindWithCoordinates(ctx context.Context) ([]*entity.Shop, error)
	// ClearNewFlagBefore sets is_new=false on new shops created before cutoff
	// and returns how many rows changed.
	ClearNewFlagBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
