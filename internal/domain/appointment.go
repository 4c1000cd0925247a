package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment is a booked visit. ServiceName and ServicePrice are
// denormalized at booking time so later catalog edits do not rewrite
// history. ActualDurationMinutes is filled by staff after completion
// and feeds the duration statistics.
type Appointment struct {
	ID                    uuid.UUID
	BusinessID            uuid.UUID
	BarberID              uuid.UUID
	ServiceID             uuid.UUID
	ClientName            string
	ClientPhone           *string
	ScheduledAt           time.Time
	DurationMinutes       int64
	ActualDurationMinutes *int64
	Status                AppointmentStatus
	ServiceName           string
	ServicePrice          int64
	Notes                 *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// BlocksTime reports whether the appointment occupies the barber's
// calendar. Cancelled, completed and no-show appointments free the slot.
func (a *Appointment) BlocksTime() bool {
	for _, s := range BlockingStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// Interval returns the occupied interval without buffer
func (a *Appointment) Interval() Interval {
	return Interval{
		Start: a.ScheduledAt,
		End:   a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute),
	}
}

// Block is a manual barber unavailability window (vacation, sick leave,
// lunch). AllDay blocks cover the whole calendar day regardless of the
// stored bounds.
type Block struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	BarberID   uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	AllDay     bool
	Reason     *string
	CreatedAt  time.Time
}
