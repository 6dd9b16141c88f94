package packets

// Latitude and Longitude are pointers so a mosque at exactly 0 degrees
// still passes the required check.
type CreateMosqueRequest struct {
	ID         string   `json:"id" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Address    string   `json:"address" binding:"required"`
	City       string   `json:"city" binding:"required"`
	Latitude   *float64 `json:"latitude" binding:"required"`
	Longitude  *float64 `json:"longitude" binding:"required"`
	Fajr       string   `json:"fajr" binding:"required"`
	Dhuhr      string   `json:"dhuhr" binding:"required"`
	Asr        string   `json:"asr" binding:"required"`
	Maghrib    string   `json:"maghrib" binding:"required"`
	Isha       string   `json:"isha" binding:"required"`
	Capacity   *int     `json:"capacity"`
	Facilities []string `json:"facilities"`
}

type UpdateMosqueRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Capacity *int    `json:"capacity"`
}

type UpdateTimingsRequest struct {
	Fajr    string `json:"fajr" binding:"required"`
	Dhuhr   string `json:"dhuhr" binding:"required"`
	Asr     string `json:"asr" binding:"required"`
	Maghrib string `json:"maghrib" binding:"required"`
	Isha    string `json:"isha" binding:"required"`
}

type CreateDisplayRequest struct {
	Name string `json:"name" binding:"required"`
}

type PairDisplayRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}
