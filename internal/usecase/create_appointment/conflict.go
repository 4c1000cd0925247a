package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
)

// buildBusyIntervals собирает занятые интервалы барбера. Та же модель
// занятости, что и при выдаче слотов: создание записи обязано видеть
// календарь теми же глазами. Буфер принадлежит создаваемой записи и
// учитывается в её окне, а не в чужих интервалах.
//
// Испорченный интервал - ошибка данных, а не повод молча отдать
// занятое время.
func buildBusyIntervals(
	appointments []*domain.Appointment,
	blocks []*domain.Block,
	dayStart time.Time,
) ([]domain.Interval, error) {
	intervals := make([]domain.Interval, 0, len(appointments)+len(blocks))

	for _, appointment := range appointments {
		if !appointment.BlocksTime() {
			continue
		}
		if appointment.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: appointment id=%s has non-positive duration %d",
				ErrMalformedInterval, appointment.ID, appointment.DurationMinutes)
		}
		intervals = append(intervals, appointment.Interval())
	}

	dayEnd := dayStart.Add(24 * time.Hour)

	for _, block := range blocks {
		if block.AllDay {
			intervals = append(intervals, domain.Interval{Start: dayStart, End: dayEnd})
			continue
		}
		if !block.StartTime.Before(block.EndTime) {
			return nil, fmt.Errorf("%w: block id=%s has end %s not after start %s",
				ErrMalformedInterval, block.ID,
				block.EndTime.Format(time.RFC3339), block.StartTime.Format(time.RFC3339))
		}
		intervals = append(intervals, domain.Interval{Start: block.StartTime, End: block.EndTime})
	}

	return domain.MergeIntervals(intervals), nil
}

// hasConflict проверяет пересечение окна записи с занятыми интервалами
func hasConflict(window domain.Interval, busy []domain.Interval) bool {
	for _, interval := range busy {
		if window.Overlaps(interval) {
			return true
		}
	}
	return false
}
