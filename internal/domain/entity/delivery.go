package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is one of the fixed delivery phases.
type DeliveryStatus string

const (
	DeliveryStatusPackaging      DeliveryStatus = "Packaging"
	DeliveryStatusTransit        DeliveryStatus = "Transit"
	DeliveryStatusShipToOutlet   DeliveryStatus = "ShipToOutlet"
	DeliveryStatusOutForDelivery DeliveryStatus = "OutForDelivery"
	DeliveryStatusDelivered      DeliveryStatus = "Delivered"
)

// deliveryPhases is the fixed linear order. Delivered is terminal.
var deliveryPhases = []DeliveryStatus{
	DeliveryStatusPackaging,
	DeliveryStatusTransit,
	DeliveryStatusShipToOutlet,
	DeliveryStatusOutForDelivery,
	DeliveryStatusDelivered,
}

var deliveryStatusLabels = map[DeliveryStatus]string{
	DeliveryStatusPackaging:      "Packaging",
	DeliveryStatusTransit:        "In Transit",
	DeliveryStatusShipToOutlet:   "Ship to Outlet",
	DeliveryStatusOutForDelivery: "Out for Delivery",
	DeliveryStatusDelivered:      "Delivered",
}

// DeliveryPhases returns a copy of the phase sequence.
func DeliveryPhases() []DeliveryStatus {
	return append([]DeliveryStatus(nil), deliveryPhases...)
}

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// Index returns the position of s in the phase sequence, or -1.
func (s DeliveryStatus) Index() int {
	for i, phase := range deliveryPhases {
		if phase == s {
			return i
		}
	}

	return -1
}

// IsValid checks if the DeliveryStatus is one of the known phases.
func (s DeliveryStatus) IsValid() bool {
	return s.Index() >= 0
}

// IsTerminal reports whether s is the final phase.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered
}

// Label is the human readable name of the phase.
func (s DeliveryStatus) Label() string {
	return deliveryStatusLabels[s]
}

// NextStatus returns the phase immediately after current. ok is false when
// current is Delivered or not a known phase.
func NextStatus(current DeliveryStatus) (next DeliveryStatus, ok bool) {
	idx := current.Index()
	if idx < 0 || idx == len(deliveryPhases)-1 {
		return "", false
	}

	return deliveryPhases[idx+1], true
}

// StatusUpdate is one entry of a delivery's append-only status history.
type StatusUpdate struct {
	Status    DeliveryStatus `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Notes     string         `json:"notes,omitempty"`
	Location  string         `json:"location,omitempty"`
	UpdatedBy string         `json:"updated_by,omitempty"`
}

// Delivery tracks shipment of a single order through the delivery phases.
type Delivery struct {
	ID                    uuid.UUID      `json:"id"`
	OrderID               uuid.UUID      `json:"order_id"`
	ShopID                uuid.UUID      `json:"shop_id"`
	Status                DeliveryStatus `json:"status"`
	CurrentLocation       string         `json:"current_location,omitempty"`
	EstimatedDeliveryDate *time.Time     `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time     `json:"actual_delivery_date,omitempty"`
	TrackingNumber        string         `json:"tracking_number"`
	DeliveryNotes         string         `json:"delivery_notes,omitempty"`
	StatusHistory         []StatusUpdate `json:"status_history"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// RecordStatus moves the delivery to status and appends exactly one history
// entry. An empty location keeps the current location. The actual delivery
// date is set only while the latest status is Delivered.
func (d *Delivery) RecordStatus(status DeliveryStatus, notes, location, updatedBy string, now time.Time) {
	if location == "" {
		location = d.CurrentLocation
	}

	d.StatusHistory = append(d.StatusHistory, StatusUpdate{
		Status:    status,
		Timestamp: now,
		Notes:     notes,
		Location:  location,
		UpdatedBy: updatedBy,
	})
	d.Status = status
	d.CurrentLocation = location
	d.UpdatedAt = now

	if status.IsTerminal() {
		delivered := now
		d.ActualDeliveryDate = &delivered
	} else {
		d.ActualDeliveryDate = nil
	}
}

// NextStatus returns the phase after the delivery's current status.
func (d *Delivery) NextStatus() (DeliveryStatus, bool) {
	return NextStatus(d.Status)
}
