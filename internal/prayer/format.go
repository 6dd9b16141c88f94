// Package prayer formats prayer timetables for display boards and refreshes
// stored timings from the AlAdhan calculation service.
package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/openummah/masjidmap/internal/model"
)

// To12Hour converts a "HH:MM" 24-hour string into the display time and
// period, e.g. "17:30" -> ("05:30", "PM").
func To12Hour(t24 string) (string, string, error) {
	parts := strings.SplitN(t24, ":", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed time %q", t24)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return "", "", fmt.Errorf("malformed hour in %q", t24)
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
		if h > 12 {
			h -= 12
		}
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%s", h, parts[1]), period, nil
}

// BuildTimetable renders the board payload for a mosque. Times that fail to
// parse are passed through verbatim with an empty period; the dataset does
// not validate its time strings.
func BuildTimetable(m model.Mosque, city string, now time.Time) model.Timetable {
	prayers := make([]model.Prayer, 0, 5)
	for _, nt := range m.PrayerTimes() {
		t12, period, err := To12Hour(nt.Time)
		if err != nil {
			t12, period = nt.Time, ""
		}
		prayers = append(prayers, model.Prayer{
			Name:   strings.ToUpper(nt.Name),
			Time:   t12,
			Period: period,
		})
	}

	return model.Timetable{
		MosqueID: m.ID,
		City:     strings.ToUpper(city),
		Date:     strings.ToUpper(now.Format("January 2, 2006")),
		Prayers:  prayers,
	}
}
