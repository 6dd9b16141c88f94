package model

// Prayer is one row of the 12-hour timetable pushed to paired display boards.
type Prayer struct {
	Name   string `json:"name"`   // "FAJR", "DHUHR", ...
	Time   string `json:"time"`   // "05:12"
	Period string `json:"period"` // "AM" or "PM"
}

// Timetable is the payload published to masjid/<id>/timetable.
type Timetable struct {
	MosqueID string   `json:"mosque_id"`
	City     string   `json:"city"`
	Date     string   `json:"date"` // "AUGUST 5, 2025"
	Prayers  []Prayer `json:"prayers"`
}
