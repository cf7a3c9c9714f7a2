package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	"snackbasket/internal/domain/repository"
	"snackbasket/internal/errors"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type surveyService struct {
	surveyRepo repository.SurveyRepository
	shopRepo   repository.ShopRepository
	now        func() time.Time
	logger     *slog.Logger
}

// SurveyServiceParams holds dependencies for SurveyService, injected by Fx.
type SurveyServiceParams struct {
	fx.In

	SurveyRepo repository.SurveyRepository
	ShopRepo   repository.ShopRepository
	Logger     *slog.Logger
}

// NewSurveyService creates the survey usecase.
func NewSurveyService(params SurveyServiceParams) usecase.SurveyUsecase {
	return &surveyService{
		surveyRepo: params.SurveyRepo,
		shopRepo:   params.ShopRepo,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *surveyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *surveyService) SubmitSurvey(ctx context.Context, input *usecase.SubmitSurveyInput) (*entity.Survey, error) {
	name := strings.TrimSpace(input.RespondentName)
	if name == "" {
		return nil, invalid("respondent name is required")
	}

	phone := strings.TrimSpace(input.RespondentPhone)
	if phone != "" && !entity.IsValidPhoneNumber(phone) {
		return nil, invalid("respondent phone may only contain digits, spaces and + - ( )")
	}

	if err := validateRatings(input.Ratings); err != nil {
		return nil, err
	}

	if input.ShopID != nil {
		_, err := srv.shopRepo.FindByID(ctx, *input.ShopID)
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound.WithDetails(input.ShopID.String())
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find shop")
		}
	}

	concerns := make([]string, 0, len(input.Concerns))
	for _, concern := range input.Concerns {
		if c := strings.TrimSpace(concern); c != "" {
			concerns = append(concerns, c)
		}
	}

	survey := &entity.Survey{
		ID:              uuid.New(),
		ShopID:          input.ShopID,
		RespondentName:  name,
		RespondentPhone: phone,
		Ratings:         input.Ratings,
		Feedback:        strings.TrimSpace(input.Feedback),
		Concerns:        concerns,
		CreatedAt:       srv.now(),
	}

	if err := srv.surveyRepo.Create(ctx, survey); err != nil {
		return nil, errors.Wrap(err, "failed to create survey")
	}

	srv.log(ctx).Info("Survey submitted",
		slog.String("surveyID", survey.ID.String()),
		slog.Float64("averageRating", survey.Ratings.Average()))

	return survey, nil
}

func validateRatings(r entity.SurveyRatings) error {
	fields := []struct {
		name  string
		value int
	}{
		{"productQuality", r.ProductQuality},
		{"deliveryExperience", r.DeliveryExperience},
		{"pricing", r.Pricing},
		{"customerService", r.CustomerService},
		{"overallSatisfaction", r.OverallSatisfaction},
	}
	for _, f := range fields {
		if f.value < entity.MinRating || f.value > entity.MaxRating {
			return invalid(fmt.Sprintf("%s rating must be between %d and %d", f.name, entity.MinRating, entity.MaxRating))
		}
	}

	return nil
}

func (srv *surveyService) ListSurveys(ctx context.Context, shopID *uuid.UUID) ([]*entity.Survey, error) {
	surveys, err := srv.surveyRepo.List(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list surveys")
	}

	return surveys, nil
}

func (srv *surveyService) GetSurvey(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
	survey, err := srv.surveyRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSurveyNotFound) {
		return nil, domainerrors.ErrSurveyNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find survey")
	}

	return survey, nil
}
