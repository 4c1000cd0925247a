package domain

import "time"

// DayHours is the operating window for a single weekday.
// A day with Enabled=false or a missing bound has no bookable slots.
// Invariant (enforced on write): when both bounds are present, Open < Close.
type DayHours struct {
	Open    *string `json:"open"`  // "HH:MM"
	Close   *string `json:"close"` // "HH:MM"
	Enabled bool    `json:"enabled"`
}

// IsOpen returns true if the day has a complete operating window
func (d DayHours) IsOpen() bool {
	return d.Enabled && d.Open != nil && d.Close != nil
}

// OperatingHours holds per-weekday operating windows for a business.
// Stored as JSONB in the businesses table.
type OperatingHours struct {
	Monday    DayHours `json:"mon"`
	Tuesday   DayHours `json:"tue"`
	Wednesday DayHours `json:"wed"`
	Thursday  DayHours `json:"thu"`
	Friday    DayHours `json:"fri"`
	Saturday  DayHours `json:"sat"`
	Sunday    DayHours `json:"sun"`
}

// ForWeekday returns the operating window for the given weekday
func (h OperatingHours) ForWeekday(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	default:
		return DayHours{Enabled: false}
	}
}
