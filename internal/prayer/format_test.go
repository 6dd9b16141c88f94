package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openummah/masjidmap/internal/model"
)

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in     string
		time   string
		period string
	}{
		{"00:15", "12:15", "AM"},
		{"05:12", "05:12", "AM"},
		{"11:59", "11:59", "AM"},
		{"12:00", "12:00", "PM"},
		{"13:05", "01:05", "PM"},
		{"17:30", "05:30", "PM"},
		{"23:45", "11:45", "PM"},
	}

	for _, tt := range tests {
		got, period, err := To12Hour(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.time, got, tt.in)
		assert.Equal(t, tt.period, period, tt.in)
	}
}

func TestTo12HourRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "noon", "25:00", "5"} {
		_, _, err := To12Hour(in)
		assert.Error(t, err, in)
	}
}

func TestBuildTimetable(t *testing.T) {
	m := model.Mosque{
		ID:      "east-london-mosque",
		Fajr:    "04:45",
		Dhuhr:   "13:05",
		Asr:     "17:30",
		Maghrib: "20:12",
		Isha:    "21:45",
	}

	now := time.Date(2025, time.August, 5, 12, 0, 0, 0, time.UTC)
	tt := BuildTimetable(m, "London", now)

	assert.Equal(t, "east-london-mosque", tt.MosqueID)
	assert.Equal(t, "LONDON", tt.City)
	assert.Equal(t, "AUGUST 5, 2025", tt.Date)

	assert.Len(t, tt.Prayers, 5)
	assert.Equal(t, model.Prayer{Name: "FAJR", Time: "04:45", Period: "AM"}, tt.Prayers[0])
	assert.Equal(t, model.Prayer{Name: "DHUHR", Time: "01:05", Period: "PM"}, tt.Prayers[1])
	assert.Equal(t, model.Prayer{Name: "ASR", Time: "05:30", Period: "PM"}, tt.Prayers[2])
	assert.Equal(t, model.Prayer{Name: "MAGHRIB", Time: "08:12", Period: "PM"}, tt.Prayers[3])
	assert.Equal(t, model.Prayer{Name: "ISHA", Time: "09:45", Period: "PM"}, tt.Prayers[4])
}

func TestBuildTimetablePassesMalformedTimesThrough(t *testing.T) {
	m := model.Mosque{ID: "m", Fajr: "dawn", Dhuhr: "13:05", Asr: "17:30", Maghrib: "20:12", Isha: "21:45"}

	tt := BuildTimetable(m, "London", time.Now())
	assert.Equal(t, "dawn", tt.Prayers[0].Time)
	assert.Equal(t, "", tt.Prayers[0].Period)
}
