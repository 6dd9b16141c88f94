package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openummah/masjidmap/internal/model"
)

var (
	london = model.Coordinate{Lat: 51.5074, Lon: -0.1278}
	paris  = model.Coordinate{Lat: 48.8566, Lon: 2.3522}
)

func TestDistanceToSelfIsZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(london, london))
	assert.Equal(t, 0.0, DistanceKm(paris, paris))
}

func TestDistanceIsSymmetric(t *testing.T) {
	assert.Equal(t, DistanceKm(london, paris), DistanceKm(paris, london))
}

func TestLondonToParis(t *testing.T) {
	// well-known reference distance for the Haversine formula
	assert.InDelta(t, 343.5, DistanceKm(london, paris), 1.0)
}

func TestDistanceIsDeterministic(t *testing.T) {
	first := DistanceKm(london, paris)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DistanceKm(london, paris))
	}
}

func mosqueAt(id string, lat, lon float64) model.Mosque {
	return model.Mosque{ID: id, Latitude: lat, Longitude: lon}
}

func TestSortByDistanceAscending(t *testing.T) {
	mosques := []model.Mosque{
		mosqueAt("far", 51.60, -0.20),
		mosqueAt("near", 51.51, -0.13),
		mosqueAt("mid", 51.55, -0.10),
	}

	SortByDistance(mosques, london)

	assert.Equal(t, "near", mosques[0].ID)
	assert.Equal(t, "mid", mosques[1].ID)
	assert.Equal(t, "far", mosques[2].ID)

	for i := 0; i < len(mosques)-1; i++ {
		assert.LessOrEqual(t,
			DistanceKm(london, mosques[i].Coordinate()),
			DistanceKm(london, mosques[i+1].Coordinate()))
	}
}

func TestSortByDistanceIsIdempotent(t *testing.T) {
	mosques := []model.Mosque{
		mosqueAt("c", 51.60, -0.20),
		mosqueAt("a", 51.51, -0.13),
		mosqueAt("b", 51.55, -0.10),
	}

	SortByDistance(mosques, london)
	once := make([]string, len(mosques))
	for i, m := range mosques {
		once[i] = m.ID
	}

	SortByDistance(mosques, london)
	for i, m := range mosques {
		assert.Equal(t, once[i], m.ID)
	}
}

func TestSortByDistanceStableForTies(t *testing.T) {
	// identical coordinates keep their dataset order
	mosques := []model.Mosque{
		mosqueAt("first", 51.52, -0.10),
		mosqueAt("second", 51.52, -0.10),
		mosqueAt("third", 51.52, -0.10),
	}

	SortByDistance(mosques, london)

	assert.Equal(t, "first", mosques[0].ID)
	assert.Equal(t, "second", mosques[1].ID)
	assert.Equal(t, "third", mosques[2].ID)
}
