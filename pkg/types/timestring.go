package types

import (
	"fmt"
	"time"
)

const timeFormat = "15:04"

// TimeString время дня в формате "HH:MM" (без даты и часового пояса).
// Используется для границ рабочего дня, окон акций и времени начала записи.
// Строковое представление с ведущими нулями сравнивается лексикографически.
type TimeString string

// NewTimeString создает TimeString из time.Time (берет часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString парсит строку вида "10:00" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format %q: %v", s, err)
	}
	return TimeString(t.Format(timeFormat)), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// clock разбирает часы и минуты
func (ts TimeString) clock() (hours, minutes int, err error) {
	t, err := time.Parse(timeFormat, string(ts))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time string format %q: %v", string(ts), err)
	}
	return t.Hour(), t.Minute(), nil
}

// TotalMinutes возвращает количество минут с начала дня
func (ts TimeString) TotalMinutes() (int, error) {
	h, m, err := ts.clock()
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// AddMinutes возвращает время, сдвинутое на minutes вперед.
// Возвращает ошибку, если результат выходит за пределы суток.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := ts.TotalMinutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is outside of day bounds", ts, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore проверяет, что время строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// At возвращает момент времени: дата date (год/месяц/день) + это время дня
// в часовом поясе loc
func (ts TimeString) At(date time.Time, loc *time.Location) (time.Time, error) {
	h, m, err := ts.clock()
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, h, m, 0, 0, loc), nil
}
