package spatial

import "github.com/golang/geo/s2"

// Earth's mean radius in kilometers
const EarthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two points in
// kilometers. Used to normalize listing distance into a numeric field
// before sorting; nothing downstream ever parses a display string.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}
