package entity

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used for shop proximity.
const EarthRadiusKm = 6371.0

// GeoPoint is a WGS84 coordinate. It wraps orb.Point, which stores [lon, lat].
type GeoPoint struct {
	orb.Point
}

// NewGeoPoint builds a GeoPoint from latitude and longitude in degrees.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Point: orb.Point{lon, lat}}
}

// DistanceKm returns the great-circle (Haversine) distance between two points
// on a sphere of radius EarthRadiusKm.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	// orb computes with its own radius; rescale to the mean radius.
	return geo.DistanceHaversine(p.Point, other.Point) / orb.EarthRadius * EarthRadiusKm
}

// BoundAround returns a lat/lon box that contains every point within radiusKm.
// ok is false when the box wraps the antimeridian or cannot be computed, in
// which case callers should not pre-filter by box.
func (p GeoPoint) BoundAround(radiusKm float64) (orb.Bound, bool) {
	// orb.EarthRadius is larger than EarthRadiusKm, pad so the box never cuts
	// points that are inside the radius.
	const pad = 1.05

	b := geo.NewBoundAroundPoint(p.Point, radiusKm*1000*pad)
	for _, v := range []float64{b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon()} {
		if math.IsNaN(v) {
			return orb.Bound{}, false
		}
	}
	if b.Min.Lon() > b.Max.Lon() || b.Min.Lat() > b.Max.Lat() {
		return orb.Bound{}, false
	}

	return b, true
}
