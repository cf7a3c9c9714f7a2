package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewShopWindow is how long a freshly registered shop keeps its "new" badge.
const NewShopWindow = 7 * 24 * time.Hour

// ShopCategory classifies a shop's trade.
type ShopCategory string

const (
	// ShopCategoryRetailer sells to end customers.
	ShopCategoryRetailer ShopCategory = "retailer"
	// ShopCategoryWholesaler resells in bulk.
	ShopCategoryWholesaler ShopCategory = "wholesaler"
)

var phoneNumberPattern = regexp.MustCompile(`^[0-9+\-\s()]*$`)

// IsValidPhoneNumber reports whether s uses only digits, spaces and + - ( ).
func IsValidPhoneNumber(s string) bool {
	return phoneNumberPattern.MatchString(s)
}

// legacyWholesaler is the spelling used by early clients.
const legacyWholesaler = "wholeseller"

// ParseShopCategory normalizes a category string, accepting the legacy spelling.
func ParseShopCategory(s string) (ShopCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ShopCategoryRetailer):
		return ShopCategoryRetailer, true
	case string(ShopCategoryWholesaler), legacyWholesaler:
		return ShopCategoryWholesaler, true
	default:
		return "", false
	}
}

// String returns the string representation of the ShopCategory.
func (c ShopCategory) String() string {
	return string(c)
}

// Shop is an outlet registered by an employee.
type Shop struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Location    string       `json:"location"` // Free text or reverse-geocoded address.
	PhoneNumber string       `json:"phone_number"`
	Category    ShopCategory `json:"category"`
	IsNew       bool         `json:"is_new"`
	Latitude    *float64     `json:"latitude,omitempty"`
	Longitude   *float64     `json:"longitude,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (s *Shop) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Point returns the shop position. ok is false when coordinates are missing.
func (s *Shop) Point() (p GeoPoint, ok bool) {
	if !s.HasCoordinates() {
		return GeoPoint{}, false
	}

	return NewGeoPoint(*s.Latitude, *s.Longitude), true
}

// IsNewAt reports whether the shop is still inside the default new-shop window at now.
func (s *Shop) IsNewAt(now time.Time) bool {
	return s.IsNewWithin(now, NewShopWindow)
}

// IsNewWithin reports whether the shop was created no earlier than window before now.
func (s *Shop) IsNewWithin(now time.Time, window time.Duration) bool {
	return !s.CreatedAt.Before(now.Add(-window))
}
