package settings

import (
	"fmt"
	"time"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/types"
)

// validateSettings валидирует настройки бизнеса целиком, после применения
// частичного обновления
func validateSettings(b *domain.Business) error {
	if b.Timezone != "" {
		if _, err := time.LoadLocation(b.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, b.Timezone)
		}
	}

	if b.SlotStepMinutes < domain.MinSlotStepMinutes || b.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}

	if b.BufferMinutes < domain.MinBufferMinutes || b.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	if b.AdvanceBookingDays < domain.MinAdvanceBookingDays || b.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	days := []struct {
		name  string
		hours domain.DayHours
	}{
		{"mon", b.OperatingHours.Monday},
		{"tue", b.OperatingHours.Tuesday},
		{"wed", b.OperatingHours.Wednesday},
		{"thu", b.OperatingHours.Thursday},
		{"fri", b.OperatingHours.Friday},
		{"sat", b.OperatingHours.Saturday},
		{"sun", b.OperatingHours.Sunday},
	}

	for _, day := range days {
		if err := validateDayHours(day.name, day.hours); err != nil {
			return err
		}
	}

	return nil
}

// validateDayHours валидирует расписание одного дня
func validateDayHours(name string, hours domain.DayHours) error {
	if !hours.Enabled {
		return nil
	}

	if hours.Open == nil || hours.Close == nil {
		return fmt.Errorf("%w: %s is enabled but has no open/close time", ErrInvalidInput, name)
	}

	openTime, err := types.NewTimeStringFromString(*hours.Open)
	if err != nil {
		return fmt.Errorf("%w: %s has invalid open time %q", ErrInvalidInput, name, *hours.Open)
	}

	closeTime, err := types.NewTimeStringFromString(*hours.Close)
	if err != nil {
		return fmt.Errorf("%w: %s has invalid close time %q", ErrInvalidInput, name, *hours.Close)
	}

	if !openTime.IsBefore(closeTime) {
		return fmt.Errorf("%w: %s open time must be before close time", ErrInvalidInput, name)
	}

	return nil
}
