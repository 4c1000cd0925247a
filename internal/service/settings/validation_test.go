package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/ptr"
)

func validBusiness() *domain.Business {
	day := domain.DayHours{Open: ptr.Ptr("09:00"), Close: ptr.Ptr("18:00"), Enabled: true}
	return &domain.Business{
		Timezone: "America/Costa_Rica",
		OperatingHours: domain.OperatingHours{
			Monday:  day,
			Tuesday: day,
			Sunday:  domain.DayHours{Enabled: false},
		},
		BufferMinutes:      15,
		SlotStepMinutes:    15,
		AdvanceBookingDays: 14,
	}
}

func TestValidateSettings_Valid(t *testing.T) {
	assert.NoError(t, validateSettings(validBusiness()))
}

func TestValidateSettings_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Business)
	}{
		{"unknown timezone", func(b *domain.Business) { b.Timezone = "Mars/Olympus_Mons" }},
		{"step too small", func(b *domain.Business) { b.SlotStepMinutes = 1 }},
		{"step too large", func(b *domain.Business) { b.SlotStepMinutes = 240 }},
		{"negative buffer", func(b *domain.Business) { b.BufferMinutes = -5 }},
		{"buffer too large", func(b *domain.Business) { b.BufferMinutes = 500 }},
		{"zero advance days", func(b *domain.Business) { b.AdvanceBookingDays = 0 }},
		{"advance days too large", func(b *domain.Business) { b.AdvanceBookingDays = 1000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBusiness()
			tt.mutate(b)
			assert.ErrorIs(t, validateSettings(b), ErrInvalidInput)
		})
	}
}

func TestValidateSettings_DayHours(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Business)
		valid  bool
	}{
		{
			name:   "disabled day without bounds is fine",
			mutate: func(b *domain.Business) { b.OperatingHours.Wednesday = domain.DayHours{Enabled: false} },
			valid:  true,
		},
		{
			name:   "enabled day without bounds",
			mutate: func(b *domain.Business) { b.OperatingHours.Monday = domain.DayHours{Enabled: true} },
			valid:  false,
		},
		{
			name: "invalid open time",
			mutate: func(b *domain.Business) {
				b.OperatingHours.Monday = domain.DayHours{Open: ptr.Ptr("9am"), Close: ptr.Ptr("18:00"), Enabled: true}
			},
			valid: false,
		},
		{
			name: "open equals close",
			mutate: func(b *domain.Business) {
				b.OperatingHours.Monday = domain.DayHours{Open: ptr.Ptr("10:00"), Close: ptr.Ptr("10:00"), Enabled: true}
			},
			valid: false,
		},
		{
			name: "open after close",
			mutate: func(b *domain.Business) {
				b.OperatingHours.Monday = domain.DayHours{Open: ptr.Ptr("18:00"), Close: ptr.Ptr("09:00"), Enabled: true}
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBusiness()
			tt.mutate(b)
			err := validateSettings(b)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}
