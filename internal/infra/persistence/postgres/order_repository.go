package postgres

import (
	"context"

	"snackbasket/internal/domain/entity"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/errors"
	"snackbasket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if err := repo.db.WithContext(ctx).Create(fromOrderDomain(order)).Error; err != nil {
		return translateWriteError(err, "create order")
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, shopID *uuid.UUID) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, m := range orderModels {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, nil
}

// UpdateDiscount writes only the discount columns. Line items are never rewritten.
func (repo *orderRepository) UpdateDiscount(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"discount_code":   order.DiscountCode,
			"discount_amount": order.DiscountAmount,
			"final_amount":    order.FinalAmount,
			"updated_at":      order.UpdatedAt,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "update order discount")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// returnOrderRepository implements the repository.ReturnOrderRepository interface using GORM.
type returnOrderRepository struct {
	db *gorm.DB
}

// NewReturnOrderRepository is the constructor for returnOrderRepository.
func NewReturnOrderRepository(db *gorm.DB) repository.ReturnOrderRepository {
	return &returnOrderRepository{db: db}
}

func (repo *returnOrderRepository) Create(ctx context.Context, returnOrder *entity.ReturnOrder) error {
	if err := repo.db.WithContext(ctx).Create(fromReturnOrderDomain(returnOrder)).Error; err != nil {
		return translateWriteError(err, "create return order")
	}

	return nil
}

func (repo *returnOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReturnOrder, error) {
	var retM model.ReturnOrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&retM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReturnOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find return order by id")
	}

	return toReturnOrderDomain(&retM), nil
}

func (repo *returnOrderRepository) List(ctx context.Context, shopID *uuid.UUID) ([]*entity.ReturnOrder, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	var retModels []*model.ReturnOrderModel
	if err := query.Find(&retModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list return orders")
	}

	returns := make([]*entity.ReturnOrder, 0, len(retModels))
	for _, m := range retModels {
		returns = append(returns, toReturnOrderDomain(m))
	}

	return returns, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:             data.ID,
		ShopID:         data.ShopID,
		Items:          toLineItemsDomain(data.Items),
		TotalAmount:    data.TotalAmount,
		DiscountCode:   data.DiscountCode,
		DiscountAmount: data.DiscountAmount,
		FinalAmount:    data.FinalAmount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:             data.ID,
		ShopID:         data.ShopID,
		Items:          fromLineItemsDomain(data.Items),
		TotalAmount:    data.TotalAmount,
		DiscountCode:   data.DiscountCode,
		DiscountAmount: data.DiscountAmount,
		FinalAmount:    data.FinalAmount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toReturnOrderDomain(data *model.ReturnOrderModel) *entity.ReturnOrder {
	if data == nil {
		return nil
	}

	return &entity.ReturnOrder{
		ID:            data.ID,
		ShopID:        data.ShopID,
		LinkedOrderID: data.LinkedOrderID,
		Items:         toLineItemsDomain(data.Items),
		TotalAmount:   data.TotalAmount,
		ReasonCode:    data.ReasonCode,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
	}
}

func fromReturnOrderDomain(data *entity.ReturnOrder) *model.ReturnOrderModel {
	if data == nil {
		return nil
	}

	return &model.ReturnOrderModel{
		ID:            data.ID,
		ShopID:        data.ShopID,
		LinkedOrderID: data.LinkedOrderID,
		Items:         fromLineItemsDomain(data.Items),
		TotalAmount:   data.TotalAmount,
		ReasonCode:    data.ReasonCode,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
	}
}

// toLineItemsDomain reads every record version written so far. Version 1 is
// the only shape; records without a version predate versioning and share it.
func toLineItemsDomain(records datatypes.JSONSlice[model.LineItemRecord]) entity.LineItems {
	items := make(entity.LineItems, 0, len(records))
	for _, r := range records {
		items = append(items, entity.LineItem{
			SKU: entity.SKU{
				ID:          r.SKUID,
				Name:        r.Name,
				Description: r.Description,
				Price:       r.Price,
				BoxPrice:    r.BoxPrice,
				CostPerUnit: r.CostPerUnit,
			},
			Quantity: r.Quantity,
		})
	}

	return items
}

func fromLineItemsDomain(items entity.LineItems) datatypes.JSONSlice[model.LineItemRecord] {
	records := make(datatypes.JSONSlice[model.LineItemRecord], 0, len(items))
	for _, item := range items {
		records = append(records, model.LineItemRecord{
			Version:     model.LineItemRecordVersion,
			SKUID:       item.SKU.ID,
			Name:        item.SKU.Name,
			Description: item.SKU.Description,
			Price:       item.SKU.Price,
			BoxPrice:    item.SKU.BoxPrice,
			CostPerUnit: item.SKU.CostPerUnit,
			Quantity:    item.Quantity,
		})
	}

	return records
}
