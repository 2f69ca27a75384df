// Package geo computes great-circle distances between latitude/longitude
// pairs for "N km away" labels and client-side nearby filtering.
package geo

import (
	"math"
	"sort"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// coordinates given in degrees. The result is symmetric in its arguments
// and zero for identical points.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// WithinRadius reports whether the two coordinates are at most radiusKm
// kilometers apart.
func WithinRadius(lat1, lng1, lat2, lng2, radiusKm float64) bool {
	return Distance(lat1, lng1, lat2, lng2) <= radiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// SortByDistance orders items by great-circle distance from (lat, lng),
// nearest first. coords extracts each item's coordinates.
func SortByDistance[T any](items []T, lat, lng float64, coords func(T) (float64, float64)) {
	sort.SliceStable(items, func(i, j int) bool {
		iLat, iLng := coords(items[i])
		jLat, jLng := coords(items[j])
		return Distance(lat, lng, iLat, iLng) < Distance(lat, lng, jLat, jLng)
	})
}
