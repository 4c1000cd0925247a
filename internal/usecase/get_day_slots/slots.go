package get_day_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/types"
)

// generateSlots генерирует сетку кандидатов на день и размечает доступность.
//
// Кандидаты идут от открытия до закрытия с шагом stepMinutes. Кандидат
// попадает в список даже если недоступен - клиент рисует полную сетку дня.
// Кандидат доступен, если:
//   - окно [t, t+duration+buffer) помещается до закрытия
//   - время начала не в прошлом
//   - окно не пересекается ни с одним занятым интервалом
func generateSlots(
	hours domain.DayHours,
	date time.Time,
	loc *time.Location,
	now time.Time,
	stepMinutes int64,
	durationMinutes int64,
	bufferMinutes int64,
	busy []domain.Interval,
) ([]domain.TimeSlot, error) {
	if !hours.IsOpen() {
		return []domain.TimeSlot{}, nil
	}

	openTime, err := types.NewTimeStringFromString(*hours.Open)
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q: %w", *hours.Open, err)
	}
	closeTime, err := types.NewTimeStringFromString(*hours.Close)
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q: %w", *hours.Close, err)
	}

	// Перевернутое или пустое расписание - слотов нет
	if !openTime.IsBefore(closeTime) {
		return []domain.TimeSlot{}, nil
	}

	openAt, err := openTime.At(date, loc)
	if err != nil {
		return nil, err
	}
	closeAt, err := closeTime.At(date, loc)
	if err != nil {
		return nil, err
	}

	step := time.Duration(stepMinutes) * time.Minute
	window := time.Duration(durationMinutes+bufferMinutes) * time.Minute

	slots := make([]domain.TimeSlot, 0)

	for t := openAt; t.Before(closeAt); t = t.Add(step) {
		windowEnd := t.Add(window)

		available := !windowEnd.After(closeAt) &&
			!t.Before(now) &&
			!overlapsAny(domain.Interval{Start: t, End: windowEnd}, busy)

		slots = append(slots, domain.TimeSlot{
			StartAt:   t,
			Available: available,
		})
	}

	return slots, nil
}

// overlapsAny проверяет пересечение окна с занятыми интервалами.
// Занятые интервалы отсортированы, поэтому после первого интервала,
// начинающегося не раньше конца окна, дальше можно не смотреть.
func overlapsAny(window domain.Interval, busy []domain.Interval) bool {
	for _, interval := range busy {
		if !interval.Start.Before(window.End) {
			return false
		}
		if window.Overlaps(interval) {
			return true
		}
	}
	return false
}
