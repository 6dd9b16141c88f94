package packets

// Pointers so a coordinate of exactly 0 (equator, prime meridian) still
// passes the required check.
type ReportPositionRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

type ReportFailureRequest struct {
	// "permission_denied" or "position_unavailable"
	Kind string `json:"kind" binding:"required,oneof=permission_denied position_unavailable"`
}

type SelectRequest struct {
	MosqueID string `json:"mosque_id" binding:"required"`
}

// GestureEvent is one inbound frame on the sheet websocket.
type GestureEvent struct {
	Type string `json:"type"` // "start", "move", "end", "frame"

	// cumulative vertical translation since "start", for "move"
	Translation float64 `json:"translation,omitempty"`
	// release velocity, negative = upward, for "end"
	Velocity float64 `json:"velocity,omitempty"`
	// live animation value, for "frame"
	Offset float64 `json:"offset,omitempty"`
}
