package models

// HourlyLog holds free-text journal entries for one calendar day, keyed by
// hour of day (0-23). Identity is the Date string itself: at most one
// record exists per day, and merges replace the whole Logs map rather than
// individual hours.
type HourlyLog struct {
	Date      string         `json:"date"` // YYYY-MM-DD
	Logs      map[int]string `json:"logs"`
	UpdatedAt int64          `json:"updatedAt,omitempty"`
}
