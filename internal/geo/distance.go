package geo

import (
	"math"
	"sort"

	"github.com/openummah/masjidmap/internal/model"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometres between two
// coordinates using the Haversine formula. Pure and deterministic; inputs
// outside the usual lat/lon ranges are passed through the formula unchecked.
func DistanceKm(a, b model.Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	rLat1 := toRadians(a.Lat)
	rLat2 := toRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// SortByDistance orders mosques ascending by distance to ref. The sort is
// stable, so equidistant venues keep their dataset order.
func SortByDistance(mosques []model.Mosque, ref model.Coordinate) {
	sort.SliceStable(mosques, func(i, j int) bool {
		return DistanceKm(ref, mosques[i].Coordinate()) < DistanceKm(ref, mosques[j].Coordinate())
	})
}
