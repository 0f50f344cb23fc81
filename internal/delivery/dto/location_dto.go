package dto

// Response DTOs

// LocationResponse carries display-only coordinates. Nothing downstream
// filters or sorts workers by them.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
