package domain

// Default configuration values
const (
	DefaultSlotStepMinutes    = 15
	DefaultBufferMinutes      = 0
	DefaultAdvanceBookingDays = 14
	DefaultTimezone           = "America/Costa_Rica"

	// SmartSlotStepMinutes is the rolling slot step used when smart
	// duration is enabled for a business
	SmartSlotStepMinutes = 5
)

// Business validation constants
const (
	MinSlotStepMinutes    = 5
	MaxSlotStepMinutes    = 120
	MinBufferMinutes      = 0
	MaxBufferMinutes      = 180
	MinAdvanceBookingDays = 1
	MaxAdvanceBookingDays = 365
	MaxNotesLength        = 500
	MaxClientNameLength   = 120
)

// Duration predictor thresholds: minimum sample counts required before
// an aggregated average is trusted over the nominal service duration
const (
	MinBarberSamples  = 5
	MinServiceSamples = 3
)

// Promo rules validation constants
const (
	MaxPromoRules       = 20
	MaxPromoLabelLength = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы записей, занимающие время барбера.
// Отмененные, завершенные и no-show записи слоты не блокируют.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
