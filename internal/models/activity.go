package models

// DeviceType identifies where an activity session was captured.
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeDesktop DeviceType = "desktop"
)

// ActivitySession records a span of app usage reported by a device-side
// tracker. Date is the bucketing key for per-day views.
type ActivitySession struct {
	ID         string     `json:"id"`
	AppName    string     `json:"appName"`
	DeviceType DeviceType `json:"deviceType"`
	StartTime  int64      `json:"startTime"`
	Duration   int64      `json:"duration"`
	Date       string     `json:"date"` // YYYY-MM-DD
	UpdatedAt  int64      `json:"updatedAt"`
}
