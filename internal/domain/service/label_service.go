package service

import (
	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingLabel is the payload encoded in a delivery label.
type TrackingLabel struct {
	DeliveryID     uuid.UUID
	TrackingNumber string
}

// LabelService renders and reads delivery tracking labels.
type LabelService interface {
	// GenerateTrackingLabel returns a PNG image for the delivery.
	GenerateTrackingLabel(delivery *entity.Delivery) ([]byte, error)

	// ParseTrackingLabel decodes the text scanned from a label.
	ParseTrackingLabel(payload string) (*TrackingLabel, error)
}
