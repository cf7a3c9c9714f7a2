package handler

import (
	"net/http"
	"testing"

	"snackbasket/internal/domain/entity"
	domainerrors "snackbasket/internal/domain/errors"
	mockusecase "snackbasket/internal/mocks/usecase"
	"snackbasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSurveyTestEcho(uc usecase.SurveyUsecase) *echo.Echo {
	h := NewSurveyHandler(SurveyHandlerParams{SurveyUC: uc})
	e := newTestEcho()
	e.POST("/api/surveys", h.SubmitSurvey)
	e.GET("/api/surveys", h.ListSurveys)
	e.GET("/api/surveys/:id", h.GetSurvey)

	return e
}

func TestSurveyHandler_SubmitSurvey(t *testing.T) {
	uc := mockusecase.NewMockSurveyUsecase(t)
	e := newSurveyTestEcho(uc)

	shopID := uuid.New()
	ratings := entity.SurveyRatings{ProductQuality: 5, DeliveryExperience: 4, Pricing: 3, CustomerService: 5, OverallSatisfaction: 4}
	uc.EXPECT().SubmitSurvey(mock.Anything, &usecase.SubmitSurveyInput{
		ShopID:          &shopID,
		RespondentName:  "Priya",
		RespondentPhone: "98765 43210",
		Ratings:         ratings,
		Concerns:        []string{"late delivery"},
	}).Return(&entity.Survey{ID: uuid.New(), ShopID: &shopID, Ratings: ratings}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/api/surveys", map[string]any{
		"shop_id":          shopID,
		"respondent_name":  "Priya",
		"respondent_phone": "98765 43210",
		"ratings":          ratings,
		"concerns":         []string{"late delivery"},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, decodeData[entity.Survey](t, env).Ratings.ProductQuality)
}

func TestSurveyHandler_SubmitSurveyRejected(t *testing.T) {
	uc := mockusecase.NewMockSurveyUsecase(t)
	e := newSurveyTestEcho(uc)

	rec, _ := doRequest(t, e, http.MethodPost, "/api/surveys", map[string]any{"respondent_phone": "12345"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doRequest(t, e, http.MethodPost, "/api/surveys", map[string]any{"respondent_name": "A", "respondent_phone": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.EXPECT().SubmitSurvey(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("pricing rating must be between 1 and 5"))
	rec, env := doRequest(t, e, http.MethodPost, "/api/surveys", map[string]any{"respondent_name": "A"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Details, "pricing")
}

func TestSurveyHandler_ListAndGet(t *testing.T) {
	uc := mockusecase.NewMockSurveyUsecase(t)
	e := newSurveyTestEcho(uc)

	id := uuid.New()
	uc.EXPECT().ListSurveys(mock.Anything, (*uuid.UUID)(nil)).Return([]*entity.Survey{{ID: id}}, nil)
	uc.EXPECT().GetSurvey(mock.Anything, id).Return(&entity.Survey{ID: id}, nil)

	rec, env := doRequest(t, e, http.MethodGet, "/api/surveys", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Survey](t, env), 1)

	rec, env = doRequest(t, e, http.MethodGet, "/api/surveys/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decodeData[entity.Survey](t, env).ID)
}
