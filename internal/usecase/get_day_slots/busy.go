package get_day_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
)

// buildBusyIntervals собирает занятые интервалы дня из записей и
// блокировок барберов и сливает их в минимальный набор.
//
// Буфер сюда не входит: уборка принадлежит создаваемой записи и уже
// учтена в окне кандидата. Клиент может записаться вплотную к концу
// чужой записи. Блокировки с all_day=true покрывают весь календарный день.
//
// Испорченный интервал (неположительная длительность, конец не позже
// начала) - ошибка данных: молча пропустить его значит предложить
// клиенту занятое время.
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
