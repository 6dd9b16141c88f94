package model

import "time"

// Display represents a paired timetable board mounted at a mosque. Boards
// subscribe to masjid/<mosque_id>/timetable over MQTT and re-render when a
// new timetable is published.
type Display struct {
	ID        int       `db:"id"         json:"id"`
	MosqueID  string    `db:"mosque_id"  json:"mosque_id"`
	DeviceID  *string   `db:"device_id"  json:"device_id"`
	Name      string    `db:"name"       json:"name"`
	Paired    bool      `db:"paired"     json:"paired"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
