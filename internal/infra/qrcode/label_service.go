// Package qrcode renders delivery tracking labels as QR codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"snackbasket/config"
	"snackbasket/internal/domain/entity"
	"snackbasket/internal/domain/service"
	"snackbasket/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// labelTypeDelivery tags payloads so other QR codes are rejected on scan.
const labelTypeDelivery = "delivery"

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// labelPayload is the JSON text encoded in the QR image.
type labelPayload struct {
	Type           string `json:"type"`
	DeliveryID     string `json:"delivery_id"`
	TrackingNumber string `json:"tracking_number"`
}

// NewLabelService creates the label service from the qrcode config.
func NewLabelService(cfg *config.Config) service.LabelService {
	size, level := 0, ""
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newLabelService(size, level)
}

func newLabelService(size int, errorCorrectionLevel string) *labelService {
	if size <= 0 {
		size = 256
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// parseRecoveryLevel maps the standard L/M/Q/H letters. Unknown values use M.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// encodeLabel returns the text that GenerateTrackingLabel puts in the QR code.
func encodeLabel(delivery *entity.Delivery) (string, error) {
	data, err := json.Marshal(labelPayload{
		Type:           labelTypeDelivery,
		DeliveryID:     delivery.ID.String(),
		TrackingNumber: delivery.TrackingNumber,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal label payload")
	}

	return string(data), nil
}

func (s *labelService) GenerateTrackingLabel(delivery *entity.Delivery) ([]byte, error) {
	if delivery == nil {
		return nil, errors.New("delivery is required")
	}

	text, err := encodeLabel(delivery)
	if err != nil {
		return nil, err
	}

	qr, err := qrcode.New(text, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := qr.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}

func (s *labelService) ParseTrackingLabel(payload string) (*service.TrackingLabel, error) {
	var data labelPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal label payload")
	}

	if data.Type != labelTypeDelivery {
		return nil, errors.Errorf("invalid label type: %q", data.Type)
	}

	deliveryID, err := uuid.Parse(data.DeliveryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse delivery id")
	}

	if data.TrackingNumber == "" {
		return nil, errors.New("label has no tracking number")
	}

	return &service.TrackingLabel{
		DeliveryID:     deliveryID,
		TrackingNumber: data.TrackingNumber,
	}, nil
}
