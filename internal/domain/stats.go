package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DurationStat is an aggregated average of actual service durations.
// BarberID nil means the aggregate covers the service across all barbers.
type DurationStat struct {
	BusinessID       uuid.UUID
	ServiceID        uuid.UUID
	BarberID         *uuid.UUID
	AvgActualMinutes float64
	SampleCount      int64
	UpdatedAt        time.Time
}

// RoundedMinutes returns the average rounded to the nearest whole minute
func (s *DurationStat) RoundedMinutes() int64 {
	return int64(math.Round(s.AvgActualMinutes))
}
