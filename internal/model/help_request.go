package model

// TimestampLayout is the format of HelpRequest.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// HelpRequest is a single geotagged request for assistance.
// Rows are created once and never updated; IPAddress is the only delete credential.
type HelpRequest struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Contact   string  `json:"contact"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	IPAddress string  `json:"ip_address"`
}
