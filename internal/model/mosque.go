package model

import (
	"time"

	"github.com/lib/pq"
)

// Mosque is one venue record from the bundled dataset. Loaded once at
// startup; live sessions treat the list as read-only.
type Mosque struct {
	ID         string         `db:"id"         json:"id"`
	Name       string         `db:"name"       json:"name"`
	Address    string         `db:"address"    json:"address"`
	City       string         `db:"city"       json:"city"`
	Latitude   float64        `db:"latitude"   json:"latitude"`
	Longitude  float64        `db:"longitude"  json:"longitude"`
	Fajr       string         `db:"fajr"       json:"fajr"`
	Dhuhr      string         `db:"dhuhr"      json:"dhuhr"`
	Asr        string         `db:"asr"        json:"asr"`
	Maghrib    string         `db:"maghrib"    json:"maghrib"`
	Isha       string         `db:"isha"       json:"isha"`
	Capacity   *int           `db:"capacity"   json:"capacity,omitempty"`
	Facilities pq.StringArray `db:"facilities" json:"facilities"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

func (m Mosque) Coordinate() Coordinate {
	return Coordinate{Lat: m.Latitude, Lon: m.Longitude}
}

// PrayerTimes returns the five daily times keyed in canonical order.
// The strings are free-form time-of-day values and are not validated.
func (m Mosque) PrayerTimes() []NamedTime {
	return []NamedTime{
		{Name: "fajr", Time: m.Fajr},
		{Name: "dhuhr", Time: m.Dhuhr},
		{Name: "asr", Time: m.Asr},
		{Name: "maghrib", Time: m.Maghrib},
		{Name: "isha", Time: m.Isha},
	}
}

type NamedTime struct {
	Name string `json:"name"`
	Time string `json:"time"`
}
