package repository

import (
	"context"
	"errors"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSurveyNotFound is returned when a survey lookup matches nothing.
var ErrSurveyNotFound = errors.New("survey not found")

// SurveyRepository persists customer surveys. Surveys are write-once.
type SurveyRepository interface {
	Create(ctx context.Context, survey *entity.Survey) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Survey, error)
	List(ctx context.Context, shopID *uuid.UUID) ([]*entity.Survey, error)
}
