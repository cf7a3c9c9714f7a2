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
	"gorm.io/gorm/clause"
)

// deliveryRepository implements the repository.DeliveryRepository interface using GORM.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// Create inserts the delivery. The unique order_id index turns a concurrent
// second insert into repository.ErrDeliveryExists.
func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	if err := repo.db.WithContext(ctx).Create(fromDeliveryDomain(delivery)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDeliveryExists
		}

		return translateWriteError(err, "create delivery")
	}

	return nil
}

func (repo *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDForUpdate takes a row lock, so it only serializes inside a transaction.
func (repo *deliveryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id)
}

func (repo *deliveryRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Delivery, error) {
	return repo.findOne(repo.db.WithContext(ctx), "order_id = ?", orderID)
}

func (repo *deliveryRepository) findOne(db *gorm.DB, query string, arg any) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel
	if err := db.Where(query, arg).First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return toDeliveryDomain(&deliveryM), nil
}

func (repo *deliveryRepository) List(ctx context.Context, status entity.DeliveryStatus) ([]*entity.Delivery, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status.String())
	}

	var deliveryModels []*model.DeliveryModel
	if err := query.Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, m := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(m))
	}

	return deliveries, nil
}

// Update rewrites the mutable columns, including the full history.
func (repo *deliveryRepository) Update(ctx context.Context, delivery *entity.Delivery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", delivery.ID).
		Updates(map[string]any{
			"status":                  delivery.Status.String(),
			"current_location":        delivery.CurrentLocation,
			"estimated_delivery_date": delivery.EstimatedDeliveryDate,
			"actual_delivery_date":    delivery.ActualDeliveryDate,
			"delivery_notes":          delivery.DeliveryNotes,
			"status_history":          fromStatusHistoryDomain(delivery.StatusHistory),
			"updated_at":              delivery.UpdatedAt,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "update delivery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

type statusCount struct {
	Status string
	Count  int64
}

func (repo *deliveryRepository) CountByStatus(ctx context.Context) (map[entity.DeliveryStatus]int64, error) {
	var rows []statusCount
	err := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count deliveries by status")
	}

	counts := make(map[entity.DeliveryStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.DeliveryStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	history := make([]entity.StatusUpdate, 0, len(data.StatusHistory))
	for _, r := range data.StatusHistory {
		history = append(history, entity.StatusUpdate{
			Status:    entity.DeliveryStatus(r.Status),
			Timestamp: r.Timestamp,
			Notes:     r.Notes,
			Location:  r.Location,
			UpdatedBy: r.UpdatedBy,
		})
	}

	return &entity.Delivery{
		ID:                    data.ID,
		OrderID:               data.OrderID,
		ShopID:                data.ShopID,
		Status:                entity.DeliveryStatus(data.Status),
		CurrentLocation:       data.CurrentLocation,
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		ActualDeliveryDate:    data.ActualDeliveryDate,
		TrackingNumber:        data.TrackingNumber,
		DeliveryNotes:         data.DeliveryNotes,
		StatusHistory:         history,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:                    data.ID,
		OrderID:               data.OrderID,
		ShopID:                data.ShopID,
		Status:                data.Status.String(),
		CurrentLocation:       data.CurrentLocation,
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		ActualDeliveryDate:    data.ActualDeliveryDate,
		TrackingNumber:        data.TrackingNumber,
		DeliveryNotes:         data.DeliveryNotes,
		StatusHistory:         fromStatusHistoryDomain(data.StatusHistory),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromStatusHistoryDomain(history []entity.StatusUpdate) datatypes.JSONSlice[model.StatusUpdateRecord] {
	records := make(datatypes.JSONSlice[model.StatusUpdateRecord], 0, len(history))
	for _, u := range history {
		records = append(records, model.StatusUpdateRecord{
			Version:   model.StatusUpdateRecordVersion,
			Status:    u.Status.String(),
			Timestamp: u.Timestamp,
			Notes:     u.Notes,
			Location:  u.Location,
			UpdatedBy: u.UpdatedBy,
		})
	}

	return records
}
