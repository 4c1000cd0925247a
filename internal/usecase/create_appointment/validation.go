package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberID is required", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must be at most %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи попадает в окно предварительной записи
func validateDate(startAt, now time.Time, loc *time.Location, advanceBookingDays int64) error {
	startLocal := startAt.In(loc)
	nowLocal := now.In(loc)

	startDay := time.Date(startLocal.Year(), startLocal.Month(), startLocal.Day(), 0, 0, 0, 0, loc)
	nowDay := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	if startDay.Before(nowDay) {
		return ErrInvalidDate
	}

	maxDate := nowDay.AddDate(0, 0, int(advanceBookingDays))
	if startDay.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateWithinHours проверяет, что окно записи [startAt, startAt+window)
// целиком помещается в рабочие часы дня, а время начала выровнено по
// сетке слотов бизнеса.
func validateWithinHours(business *domain.Business, startAt time.Time, loc *time.Location, windowMinutes int64) error {
	startLocal := startAt.In(loc)
	hours := business.OperatingHours.ForWeekday(startLocal.Weekday())
	if !hours.IsOpen() {
		return ErrBusinessClosed
	}

	openTime, err := types.NewTimeStringFromString(*hours.Open)
	if err != nil {
		return fmt.Errorf("%w: invalid open time %q: %v", ErrInternal, *hours.Open, err)
	}
	closeTime, err := types.NewTimeStringFromString(*hours.Close)
	if err != nil {
		return fmt.Errorf("%w: invalid close time %q: %v", ErrInternal, *hours.Close, err)
	}
	if !openTime.IsBefore(closeTime) {
		return ErrBusinessClosed
	}

	day := time.Date(startLocal.Year(), startLocal.Month(), startLocal.Day(), 0, 0, 0, 0, loc)
	openAt, err := openTime.At(day, loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	closeAt, err := closeTime.At(day, loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if startAt.Before(openAt) {
		return ErrBusinessClosed
	}
	if startAt.Add(time.Duration(windowMinutes) * time.Minute).After(closeAt) {
		return ErrBusinessClosed
	}

	// Время должно лежать на сетке кандидатов, которую видел клиент
	offset := startAt.Sub(openAt)
	step := time.Duration(business.StepMinutes()) * time.Minute
	if offset%step != 0 {
		return ErrInvalidTimeSlot
	}

	return nil
}
