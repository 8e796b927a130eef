package model

import (
	"time"
)

// Sentinel values substituted when real data is unavailable
const (
	Unknown      = "Unknown"
	Local        = "Local"
	Direct       = "Direct"
	NotAvailable = "N/A"
)

// TimestampLayout is the persisted, lexicographically sortable visit time format
const TimestampLayout = "2006-01-02 15:04:05"

// DeviceClass is the coarse device category derived from a user agent
type DeviceClass string

const (
	DeviceMobile  DeviceClass = "Mobile"
	DeviceTablet  DeviceClass = "Tablet"
	DeviceDesktop DeviceClass = "Desktop"
)

// Visit represents one recorded visit to the redirect endpoint
type Visit struct {
	ID        int64       `json:"-" gorm:"primaryKey;autoIncrement"`
	Timestamp string      `json:"timestamp" gorm:"type:varchar(19);not null;index"`
	IPAddress string      `json:"ip_address" gorm:"type:varchar(45);not null"`
	Country   string      `json:"country" gorm:"type:varchar(100)"`
	City      string      `json:"city" gorm:"type:varchar(100)"`
	Browser   string      `json:"browser" gorm:"type:text"`
	Device    DeviceClass `json:"device" gorm:"type:varchar(50)"`
	Referrer  string      `json:"referrer" gorm:"type:text"`
}

// TableName returns the table name for Visit
func (Visit) TableName() string {
	return "tracking_data"
}

// FieldNames lists the persisted fields in their fixed order
var FieldNames = []string{"timestamp", "ip_address", "country", "city", "browser", "device", "referrer"}

// Fields returns the persisted fields in FieldNames order
func (v *Visit) Fields() []string {
	return []string{v.Timestamp, v.IPAddress, v.Country, v.City, v.Browser, string(v.Device), v.Referrer}
}

// VisitFromFields builds a Visit from a row in FieldNames order.
// ok is false when the row does not have exactly one value per field.
func VisitFromFields(fields []string) (Visit, bool) {
	if len(fields) != len(FieldNames) {
		return Visit{}, false
	}
	return Visit{
		Timestamp: fields[0],
		IPAddress: fields[1],
		Country:   fields[2],
		City:      fields[3],
		Browser:   fields[4],
		Device:    DeviceClass(fields[5]),
		Referrer:  fields[6],
	}, true
}

// FormatTimestamp renders t in the persisted timestamp format
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// VisitRequest carries the raw request attributes a visit is derived from
type VisitRequest struct {
	ForwardedFor string
	RemoteAddr   string
	UserAgent    string
	Referrer     string
}

// Location is a resolved geographic position for an IP address
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// UnknownLocation is returned whenever a lookup cannot be completed
func UnknownLocation() Location {
	return Location{Country: Unknown, City: Unknown}
}

// LocalLocation is returned for loopback and private addresses
func LocalLocation() Location {
	return Location{Country: Local, City: Local}
}
