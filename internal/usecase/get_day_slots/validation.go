package get_day_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.BarberID != nil && *req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberID must not be empty", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно предварительной записи.
// Сравнение идет по календарным дням в таймзоне бизнеса.
func validateDate(requestDate, now time.Time, loc *time.Location, advanceBookingDays int64) error {
	if isDateInPast(requestDate, now, loc) {
		return ErrInvalidDate
	}

	nowLocal := now.In(loc)
	maxDate := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, int(advanceBookingDays))

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, loc)

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня в таймзоне бизнеса
func isDateInPast(date, now time.Time, loc *time.Location) bool {
	nowLocal := now.In(loc)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	nowOnly := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)
	return dateOnly.Before(nowOnly)
}
