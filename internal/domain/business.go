package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business is a tenant of the platform. Slot computation settings
// (operating hours, buffer, step, smart duration) live here.
type Business struct {
	ID                   uuid.UUID
	Slug                 string
	Name                 string
	Timezone             string
	OperatingHours       OperatingHours
	BufferMinutes        int64
	SlotStepMinutes      int64
	SmartDurationEnabled bool
	AdvanceBookingDays   int64
	ManagerIDs           []int64
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsManager reports whether the user manages this business
func (b *Business) IsManager(userID int64) bool {
	for _, id := range b.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Location resolves the business timezone. Callers decide the fallback
// when the stored name is unknown to the tzdata.
func (b *Business) Location() (*time.Location, error) {
	tz := b.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}

// StepMinutes returns the candidate grid step for slot generation.
// Smart duration switches the business to a dense rolling grid.
func (b *Business) StepMinutes() int64 {
	if b.SmartDurationEnabled {
		return SmartSlotStepMinutes
	}
	if b.SlotStepMinutes > 0 {
		return b.SlotStepMinutes
	}
	return DefaultSlotStepMinutes
}

// EffectiveAdvanceDays returns how far ahead bookings are accepted
func (b *Business) EffectiveAdvanceDays() int64 {
	if b.AdvanceBookingDays > 0 {
		return b.AdvanceBookingDays
	}
	return DefaultAdvanceBookingDays
}
