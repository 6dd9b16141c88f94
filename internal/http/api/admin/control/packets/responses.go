package packets

type MosqueResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Fajr       string   `json:"fajr"`
	Dhuhr      string   `json:"dhuhr"`
	Asr        string   `json:"asr"`
	Maghrib    string   `json:"maghrib"`
	Isha       string   `json:"isha"`
	Capacity   *int     `json:"capacity,omitempty"`
	Facilities []string `json:"facilities"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type DisplayResponse struct {
	ID       int     `json:"id"`
	MosqueID string  `json:"mosque_id"`
	DeviceID *string `json:"device_id"`
	Name     string  `json:"name"`
	Paired   bool    `json:"paired"`
}
