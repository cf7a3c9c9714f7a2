package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for every survey score.
const (
	MinRating = 1
	MaxRating = 5
)

// SurveyRatings holds the five scores of a customer survey.
type SurveyRatings struct {
	ProductQuality      int `json:"product_quality"`
	DeliveryExperience  int `json:"delivery_experience"`
	Pricing             int `json:"pricing"`
	CustomerService     int `json:"customer_service"`
	OverallSatisfaction int `json:"overall_satisfaction"`
}

// Values returns the scores in a fixed order.
func (r SurveyRatings) Values() []int {
	return []int{r.ProductQuality, r.DeliveryExperience, r.Pricing, r.CustomerService, r.OverallSatisfaction}
}

// Average is the mean of the five scores.
func (r SurveyRatings) Average() float64 {
	values := r.Values()
	var sum int
	for _, v := range values {
		sum += v
	}

	return float64(sum) / float64(len(values))
}

// Survey is a write-once customer satisfaction record.
type Survey struct {
	ID              uuid.UUID     `json:"id"`
	ShopID          *uuid.UUID    `json:"shop_id,omitempty"`
	RespondentName  string        `json:"respondent_name"`
	RespondentPhone string        `json:"respondent_phone,omitempty"`
	Ratings         SurveyRatings `json:"ratings"`
	Feedback        string        `json:"feedback,omitempty"`
	Concerns        []string      `json:"concerns"`
	CreatedAt       time.Time     `json:"created_at"`
}
