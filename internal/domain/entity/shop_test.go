package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseShopCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   ShopCategory
		wantOK bool
	}{
		{in: "retailer", want: ShopCategoryRetailer, wantOK: true},
		{in: " Wholesaler ", want: ShopCategoryWholesaler, wantOK: true},
		{in: "wholeseller", want: ShopCategoryWholesaler, wantOK: true},
		{in: "distributor", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseShopCategory(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestShop_IsNewAt(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	fresh := &Shop{CreatedAt: now}
	old := &Shop{CreatedAt: now.Add(-8 * 24 * time.Hour)}
	edge := &Shop{CreatedAt: now.Add(-NewShopWindow)}

	assert.True(t, fresh.IsNewAt(now))
	assert.False(t, old.IsNewAt(now))
	assert.True(t, edge.IsNewAt(now))
	assert.False(t, edge.IsNewWithin(now, 24*time.Hour))
}

func TestShop_Point(t *testing.T) {
	lat, lon := 0.0, 0.0
	withZero := &Shop{Latitude: &lat, Longitude: &lon}
	missing := &Shop{Latitude: &lat}

	_, ok := withZero.Point()
	assert.True(t, ok, "zero coordinates are valid")

	_, ok = missing.Point()
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+91 (80) 1234-5678"))
	assert.True(t, IsValidPhoneNumber("0123456789"))
	assert.False(t, IsValidPhoneNumber("call me"))
	assert.False(t, IsValidPhoneNumber("123#456"))
}
