package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/openummah/masjidmap/internal/http/api/admin/control/packets"
	"github.com/openummah/masjidmap/internal/model"
)

func TestCreateMosqueRequestAcceptsZeroCoordinates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	// the Royal Observatory sits on the prime meridian; longitude 0 is a
	// real coordinate, not a missing field
	body := `{
		"id": "royal-observatory-musalla",
		"name": "Royal Observatory Musalla",
		"address": "Blackheath Ave, London SE10 8XJ",
		"city": "London",
		"latitude": 51.4779,
		"longitude": 0,
		"fajr": "04:45", "dhuhr": "13:05", "asr": "17:30",
		"maghrib": "20:12", "isha": "21:45"
	}`
	ctx.Request, _ = http.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	var request packets.CreateMosqueRequest
	assert.NoError(t, ctx.ShouldBindJSON(&request))
	assert.Equal(t, 0.0, *request.Longitude)
	assert.Equal(t, 51.4779, *request.Latitude)
}

func TestBoardTimetableUsesCityNotAddress(t *testing.T) {
	m := model.Mosque{
		ID:      "east-london-mosque",
		Address: "82-92 Whitechapel Rd, London E1 1JQ",
		City:    "London",
		Fajr:    "04:45",
		Dhuhr:   "13:05",
		Asr:     "17:30",
		Maghrib: "20:12",
		Isha:    "21:45",
	}

	tt := boardTimetable(m)
	assert.Equal(t, "LONDON", tt.City)
	assert.NotContains(t, tt.City, "WHITECHAPEL")
	assert.Len(t, tt.Prayers, 5)
}
