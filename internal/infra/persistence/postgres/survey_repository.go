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

// surveyRepository implements the repository.SurveyRepository interface using GORM.
type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository is the constructor for surveyRepository.
func NewSurveyRepository(db *gorm.DB) repository.SurveyRepository {
	return &surveyRepository{db: db}
}

func (repo *surveyRepository) Create(ctx context.Context, survey *entity.Survey) error {
	if err := repo.db.WithContext(ctx).Create(fromSurveyDomain(survey)).Error; err != nil {
		return translateWriteError(err, "create survey")
	}

	return nil
}

func (repo *surveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
	var surveyM model.SurveyModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&surveyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSurveyNotFound
		}

		return nil, errors.Wrap(err, "failed to find survey by id")
	}

	return toSurveyDomain(&surveyM), nil
}

func (repo *surveyRepository) List(ctx context.Context, shopID *uuid.UUID) ([]*entity.Survey, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	var surveyModels []*model.SurveyModel
	if err := query.Find(&surveyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list surveys")
	}

	surveys := make([]*entity.Survey, 0, len(surveyModels))
	for _, m := range surveyModels {
		surveys = append(surveys, toSurveyDomain(m))
	}

	return surveys, nil
}

// --- Mapper Functions ---

func toSurveyDomain(data *model.SurveyModel) *entity.Survey {
	if data == nil {
		return nil
	}

	concerns := []string(data.Concerns)
	if concerns == nil {
		concerns = []string{}
	}

	return &entity.Survey{
		ID:              data.ID,
		ShopID:          data.ShopID,
		RespondentName:  data.RespondentName,
		RespondentPhone: data.RespondentPhone,
		Ratings: entity.SurveyRatings{
			ProductQuality:      data.ProductQuality,
			DeliveryExperience:  data.DeliveryExperience,
			Pricing:             data.Pricing,
			CustomerService:     data.CustomerService,
			OverallSatisfaction: data.OverallSatisfaction,
		},
		Feedback:  data.Feedback,
		Concerns:  concerns,
		CreatedAt: data.CreatedAt,
	}
}

func fromSurveyDomain(data *entity.Survey) *model.SurveyModel {
	if data == nil {
		return nil
	}

	concerns := data.Concerns
	if concerns == nil {
		concerns = []string{}
	}

	return &model.SurveyModel{
		ID:                  data.ID,
		ShopID:              data.ShopID,
		RespondentName:      data.RespondentName,
		RespondentPhone:     data.RespondentPhone,
		ProductQuality:      data.Ratings.ProductQuality,
		DeliveryExperience:  data.Ratings.DeliveryExperience,
		Pricing:             data.Ratings.Pricing,
		CustomerService:     data.Ratings.CustomerService,
		OverallSatisfaction: data.Ratings.OverallSatisfaction,
		Feedback:            data.Feedback,
		Concerns:            datatypes.NewJSONSlice(concerns),
		CreatedAt:           data.CreatedAt,
	}
}
