package domain

import "time"

// TimeSlot is a single candidate start time for a day.
// Unavailable slots are kept in the list so clients can render a full
// grid; Discount is only set on available slots.
type TimeSlot struct {
	StartAt   time.Time
	Available bool
	Discount  *Discount
}
