package get_day_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/ptr"
)

func openHours(open, close string) domain.DayHours {
	return domain.DayHours{Open: ptr.Ptr(open), Close: ptr.Ptr(close), Enabled: true}
}

func dayAt(loc *time.Location) time.Time {
	return time.Date(2026, 3, 16, 0, 0, 0, 0, loc) // понедельник
}

func slotAt(slots []domain.TimeSlot, at time.Time) *domain.TimeSlot {
	for i := range slots {
		if slots[i].StartAt.Equal(at) {
			return &slots[i]
		}
	}
	return nil
}

func TestGenerateSlots_FullDayGrid(t *testing.T) {
	loc := time.UTC
	day := dayAt(loc)
	past := day.Add(-24 * time.Hour) // запрос на завтра, все кандидаты в будущем

	slots, err := generateSlots(openHours("09:00", "18:00"), day, loc, past, 15, 30, 15, nil)
	require.NoError(t, err)

	// 09:00 .. 17:45 с шагом 15 минут
	require.Len(t, slots, 36)
	assert.True(t, slots[0].StartAt.Equal(day.Add(9*time.Hour)))
	assert.True(t, slots[35].StartAt.Equal(day.Add(17*time.Hour+45*time.Minute)))

	// Окно 30+15 минут помещается до 18:00 только для стартов до 17:15
	last := slotAt(slots, day.Add(17*time.Hour+15*time.Minute))
	require.NotNil(t, last)
	assert.True(t, last.Available, "17:15 is the last fitting start")

	for _, at := range []time.Time{
		day.Add(17*time.Hour + 30*time.Minute),
		day.Add(17*time.Hour + 45*time.Minute),
	} {
		slot := slotAt(slots, at)
		require.NotNil(t, slot, "late candidates stay in the grid")
		assert.False(t, slot.Available, "window past closing must be unavailable")
	}
}

func TestGenerateSlots_BusyIntervalBlocksOverlaps(t *testing.T) {
	loc := time.UTC
	day := dayAt(loc)
	past := day.Add(-24 * time.Hour)

	// Занято 10:00-11:00
	busy := []domain.Interval{
		{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
	}

	slots, err := generateSlots(openHours("09:00", "18:00"), day, loc, past, 15, 30, 15, busy)
	require.NoError(t, err)

	// 09:15 + 45 минут окна заканчивается ровно в 10:00 - не пересекается
	assert.True(t, slotAt(slots, day.Add(9*time.Hour+15*time.Minute)).Available)

	// 09:30 и далее до 10:45 пересекаются с занятым интервалом
	for _, at := range []time.Time{
		day.Add(9*time.Hour + 30*time.Minute),
		day.Add(9*time.Hour + 45*time.Minute),
		day.Add(10 * time.Hour),
		day.Add(10*time.Hour + 45*time.Minute),
	} {
		assert.False(t, slotAt(slots, at).Available, "slot %s must be blocked", at)
	}

	// 11:00 начинается ровно на границе занятого интервала - свободен
	assert.True(t, slotAt(slots, day.Add(11*time.Hour)).Available)
}

func TestGenerateSlots_PastSlotsMarkedUnavailable(t *testing.T) {
	loc := time.UTC
	day := dayAt(loc)
	now := day.Add(12*time.Hour + 5*time.Minute)

	slots, err := generateSlots(openHours("09:00", "18:00"), day, loc, now, 30, 30, 0, nil)
	require.NoError(t, err)

	assert.False(t, slotAt(slots, day.Add(12*time.Hour)).Available, "12:00 already started")
	assert.True(t, slotAt(slots, day.Add(12*time.Hour+30*time.Minute)).Available)

	// Прошедшие кандидаты остаются в сетке
	assert.NotNil(t, slotAt(slots, day.Add(9*time.Hour)))
	assert.False(t, slotAt(slots, day.Add(9*time.Hour)).Available)
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	loc := time.UTC
	day := dayAt(loc)

	tests := []struct {
		name  string
		hours domain.DayHours
	}{
		{name: "disabled", hours: domain.DayHours{Enabled: false}},
		{name: "enabled without bounds", hours: domain.DayHours{Enabled: true}},
		{name: "open equals close", hours: openHours("10:00", "10:00")},
		{name: "open after close", hours: openHours("18:00", "09:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := generateSlots(tt.hours, day, loc, day, 15, 30, 0, nil)
			require.NoError(t, err)
			assert.Empty(t, slots)
		})
	}
}

func TestGenerateSlots_AscendingAndDeterministic(t *testing.T) {
	loc := time.UTC
	day := dayAt(loc)
	past := day.Add(-24 * time.Hour)

	busy := []domain.Interval{
		{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)},
	}

	first, err := generateSlots(openHours("09:00", "18:00"), day, loc, past, 15, 30, 15, busy)
	require.NoError(t, err)

	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].StartAt.Before(first[i].StartAt), "slots must be strictly ascending")
	}

	second, err := generateSlots(openHours("09:00", "18:00"), day, loc, past, 15, 30, 15, busy)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same inputs must produce identical output")
}

func TestGenerateSlots_MalformedHours(t *testing.T) {
	loc := time.UTC
	day := dayAt(loc)

	_, err := generateSlots(openHours("garbage", "18:00"), day, loc, day, 15, 30, 0, nil)
	assert.Error(t, err)

	_, err = generateSlots(openHours("09:00", "25:99"), day, loc, day, 15, 30, 0, nil)
	assert.Error(t, err)
}

func TestOverlapsAny(t *testing.T) {
	loc := time.UTC
	day := dayAt(loc)

	busy := []domain.Interval{
		{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
		{Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)},
	}

	assert.False(t, overlapsAny(domain.Interval{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)}, busy))
	assert.True(t, overlapsAny(domain.Interval{Start: day.Add(10*time.Hour + 30*time.Minute), End: day.Add(11*time.Hour + 30*time.Minute)}, busy))
	assert.False(t, overlapsAny(domain.Interval{Start: day.Add(11 * time.Hour), End: day.Add(14 * time.Hour)}, busy))
	assert.True(t, overlapsAny(domain.Interval{Start: day.Add(14*time.Hour + 59*time.Minute), End: day.Add(16 * time.Hour)}, busy))
}
