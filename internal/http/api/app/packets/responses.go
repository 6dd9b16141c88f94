package packets

type SessionResponse struct {
	Token        string       `json:"token"`
	Phase        string       `json:"phase"`
	ErrorMessage string       `json:"error_message,omitempty"`
	MosqueCount  int          `json:"mosque_count"`
	Sheet        SheetState   `json:"sheet"`
	Selected     *NearbyEntry `json:"selected,omitempty"`
}

type SheetState struct {
	Offset      float64 `json:"offset"`
	Resting     string  `json:"resting"`
	Expanded    bool    `json:"expanded"`
	ListOpacity float64 `json:"list_opacity"`

	// travel-range constants so the shell lays out the same three stops
	OffsetMax float64 `json:"offset_max"`
	OffsetMid float64 `json:"offset_mid"`
	OffsetMin float64 `json:"offset_min"`
}

type NearbyEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Fajr          string   `json:"fajr"`
	Dhuhr         string   `json:"dhuhr"`
	Asr           string   `json:"asr"`
	Maghrib       string   `json:"maghrib"`
	Isha          string   `json:"isha"`
	Capacity      *int     `json:"capacity,omitempty"`
	Facilities    []string `json:"facilities"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DistanceLabel string   `json:"distance_label,omitempty"` // "2.4 km away"
}

// SheetFrame is one outbound frame on the sheet websocket.
type SheetFrame struct {
	Type        string  `json:"type"` // "offset" or "settle"
	Offset      float64 `json:"offset"`
	ListOpacity float64 `json:"list_opacity"`

	// settle-only fields
	Target   string `json:"target,omitempty"`
	Expanded bool   `json:"expanded,omitempty"`
}
