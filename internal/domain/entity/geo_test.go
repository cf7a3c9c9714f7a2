package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPoint_DistanceKm(t *testing.T) {
	mumbai := NewGeoPoint(19.0760, 72.8777)
	pune := NewGeoPoint(18.5204, 73.8567)

	assert.InDelta(t, 0, mumbai.DistanceKm(mumbai), 1e-9)
	// Roughly 120 km by great circle.
	assert.InDelta(t, 120, mumbai.DistanceKm(pune), 2)
	assert.InDelta(t, mumbai.DistanceKm(pune), pune.DistanceKm(mumbai), 1e-9)
}

func TestGeoPoint_OneDegreeOfLatitude(t *testing.T) {
	a := NewGeoPoint(0, 0)
	b := NewGeoPoint(1, 0)

	// 2πR/360 with R = 6371 km.
	assert.InDelta(t, 111.195, a.DistanceKm(b), 0.01)
}

func TestGeoPoint_BoundAround(t *testing.T) {
	center := NewGeoPoint(12.9716, 77.5946)

	bound, ok := center.BoundAround(10)
	assert.True(t, ok)
	assert.True(t, bound.Contains(center.Point))

	// A point just inside the radius must be inside the box.
	inside := NewGeoPoint(12.9716+9.9/111.195, 77.5946)
	assert.Less(t, center.DistanceKm(inside), 10.0)
	assert.True(t, bound.Contains(inside.Point))
}

func TestGeoPoint_BoundAroundAntimeridian(t *testing.T) {
	center := NewGeoPoint(0, 179.99)

	_, ok := center.BoundAround(50)
	assert.False(t, ok)
}
