package model

// Coordinate is an immutable (latitude, longitude) pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
