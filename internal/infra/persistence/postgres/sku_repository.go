package postgres

import (
	"context"

	"snackbasket/internal/domain/entity"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/errors"
	"snackbasket/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// skuRepository implements the repository.SKURepository interface using GORM.
type skuRepository struct {
	db *gorm.DB
}

// NewSKURepository is the constructor for skuRepository.
func NewSKURepository(db *gorm.DB) repository.SKURepository {
	return &skuRepository{db: db}
}

func (repo *skuRepository) List(ctx context.Context) ([]*entity.SKU, error) {
	return repo.find(repo.db.WithContext(ctx).Order("id ASC"), "failed to list skus")
}

func (repo *skuRepository) FindByID(ctx context.Context, id string) (*entity.SKU, error) {
	var skuM model.SKUModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&skuM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSKUNotFound
		}

		return nil, errors.Wrap(err, "failed to find sku by id")
	}

	return toSKUDomain(&skuM), nil
}

func (repo *skuRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.SKU, error) {
	if len(ids) == 0 {
		return []*entity.SKU{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC"), "failed to find skus by ids")
}

func (repo *skuRepository) find(query *gorm.DB, msg string) ([]*entity.SKU, error) {
	var skuModels []*model.SKUModel
	if err := query.Find(&skuModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	skus := make([]*entity.SKU, 0, len(skuModels))
	for _, m := range skuModels {
		skus = append(skus, toSKUDomain(m))
	}

	return skus, nil
}

func (repo *skuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SKUModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count skus")
	}

	return count, nil
}

// CreateBatch inserts skus in one statement.
func (repo *skuRepository) CreateBatch(ctx context.Context, skus []*entity.SKU) error {
	if len(skus) == 0 {
		return nil
	}

	skuModels := make([]*model.SKUModel, 0, len(skus))
	for _, sku := range skus {
		skuModels = append(skuModels, fromSKUDomain(sku))
	}

	if err := repo.db.WithContext(ctx).Create(&skuModels).Error; err != nil {
		return translateWriteError(err, "create skus")
	}

	return nil
}

// --- Mapper Functions ---

func toSKUDomain(data *model.SKUModel) *entity.SKU {
	if data == nil {
		return nil
	}

	return &entity.SKU{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		BoxPrice:    data.BoxPrice,
		CostPerUnit: data.CostPerUnit,
	}
}

func fromSKUDomain(data *entity.SKU) *model.SKUModel {
	if data == nil {
		return nil
	}

	return &model.SKUModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		BoxPrice:    data.BoxPrice,
		CostPerUnit: data.CostPerUnit,
	}
}
