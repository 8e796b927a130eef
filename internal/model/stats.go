package model

import "unicode/utf8"

// ReferrerDisplayLimit is the number of referrer characters shown in the visit listing
const ReferrerDisplayLimit = 50

// Stats represents aggregate statistics over the full visit history
type Stats struct {
	TotalClicks   int            `json:"total_clicks"`
	Countries     map[string]int `json:"countries"`
	Devices       map[string]int `json:"devices"`
	LeadingDevice string         `json:"leading_device"`
}

// CountStat is one entry of a ranked frequency list
type CountStat struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// VisitRow is a visit prepared for the dashboard listing
type VisitRow struct {
	Timestamp string `json:"timestamp"`
	IPAddress string `json:"ip_address"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Device    string `json:"device"`
	Referrer  string `json:"referrer"`
}

// Dashboard is everything the dashboard page renders
type Dashboard struct {
	AccountName string      `json:"account_name"`
	Stats       *Stats      `json:"stats"`
	Countries   []CountStat `json:"countries"`
	Devices     []CountStat `json:"devices"`
	Recent      []VisitRow  `json:"recent"`
}

// EmptyDashboard is the zero-state dashboard shown when no history is available
func EmptyDashboard(accountName string) *Dashboard {
	return &Dashboard{
		AccountName: accountName,
		Stats: &Stats{
			Countries:     map[string]int{},
			Devices:       map[string]int{},
			LeadingDevice: NotAvailable,
		},
		Countries: []CountStat{},
		Devices:   []CountStat{},
		Recent:    []VisitRow{},
	}
}

// CountryCount returns the number of distinct countries seen
func (d *Dashboard) CountryCount() int {
	if d.Stats == nil {
		return 0
	}
	return len(d.Stats.Countries)
}

// NewVisitRow converts a visit for display, clipping the referrer
func NewVisitRow(v *Visit) VisitRow {
	return VisitRow{
		Timestamp: v.Timestamp,
		IPAddress: v.IPAddress,
		Country:   v.Country,
		City:      v.City,
		Device:    string(v.Device),
		Referrer:  ClipReferrer(v.Referrer),
	}
}

// ClipReferrer shortens s to ReferrerDisplayLimit characters followed by "...".
// Shorter values are returned untouched.
func ClipReferrer(s string) string {
	if utf8.RuneCountInString(s) <= ReferrerDisplayLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:ReferrerDisplayLimit]) + "..."
}
