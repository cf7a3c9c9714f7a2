package usecase

import (
	"context"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitSurveyInput defines a customer satisfaction survey.
type SubmitSurveyInput struct {
	ShopID          *uuid.UUID
	RespondentName  string
	RespondentPhone string
	Ratings         entity.SurveyRatings
	Feedback        string
	Concerns        []string
}

// SurveyUsecase defines survey collection.
type SurveyUsecase interface {
	SubmitSurvey(ctx context.Context, input *SubmitSurveyInput) (*entity.Survey, error)
	ListSurveys(ctx context.Context, shopID *uuid.UUID) ([]*entity.Survey, error)
	GetSurvey(ctx context.Context, id uuid.UUID) (*entity.Survey, error)
}
