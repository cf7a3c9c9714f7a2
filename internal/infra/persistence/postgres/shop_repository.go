package postgres

import (
	"context"
	"time"

	"snackbasket/internal/domain/entity"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/errors"
	"snackbasket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

const hasCoordinates = "latitude IS NOT NULL AND longitude IS NOT NULL"

// shopRepository implements the repository.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	if err := repo.db.WithContext(ctx).Create(fromShopDomain(shop)).Error; err != nil {
		return translateWriteError(err, "create shop")
	}

	return nil
}

func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

func (repo *shopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Shop, error) {
	if len(ids) == 0 {
		return []*entity.Shop{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).Where("id IN ?", ids), "failed to find shops by ids")
}

func (repo *shopRepository) List(ctx context.Context) ([]*entity.Shop, error) {
	return repo.find(repo.db.WithContext(ctx).Order("created_at DESC"), "failed to list shops")
}

// FindWithinBound is the coarse pre-filter for proximity search. The exact
// distance test happens in the usecase.
func (repo *shopRepository) FindWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Shop, error) {
	query := repo.db.WithContext(ctx).
		Where(hasCoordinates).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())

	return repo.find(query, "failed to find shops within bound")
}

func (repo *shopRepository) FindWithCoordinates(ctx context.Context) ([]*entity.Shop, error) {
	return repo.find(repo.db.WithContext(ctx).Where(hasCoordinates), "failed to find shops with coordinates")
}

func (repo *shopRepository) find(query *gorm.DB, msg string) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel
	if err := query.Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, m := range shopModels {
		shops = append(shops, toShopDomain(m))
	}

	return shops, nil
}

func (repo *shopRepository) ClearNewFlagBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("is_new = ? AND created_at < ?", true, cutoff).
		Update("is_new", false)
	if result.Error != nil {
		return 0, translateWriteError(result.Error, "clear new shop flags")
	}

	return result.RowsAffected, nil
}

func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopModel{})
	if result.Error != nil {
		return translateWriteError(result.Error, "delete shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		Name:        data.Name,
		Location:    data.Location,
		PhoneNumber: data.PhoneNumber,
		Category:    entity.ShopCategory(data.Category),
		IsNew:       data.IsNew,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:          data.ID,
		Name:        data.Name,
		Location:    data.Location,
		PhoneNumber: data.PhoneNumber,
		Category:    data.Category.String(),
		IsNew:       data.IsNew,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
