package get_booking_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	businessRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/business"
	"github.com/m04kA/BRB-AvailabilityService/pkg/types"
)

// UseCase use case для получения дат, открытых для записи
type UseCase struct {
	businessRepo BusinessRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(businessRepo BusinessRepository, logger Logger) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает даты внутри окна предварительной записи, в которые
// бизнес открыт. Сегодняшний день включается, только если до закрытия
// еще осталось время.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingDates: slug=%s", req.Slug)

	// 1. Валидация входных данных
	if req.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if req.Days != nil && *req.Days < 1 {
		return nil, fmt.Errorf("%w: days must be positive", ErrInvalidInput)
	}

	// 2. Получаем бизнес по slug
	business, err := uc.businessRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetBookingDates: business slug=%s not found", req.Slug)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetBookingDates: failed to get business slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.Active {
		uc.logger.Warn("GetBookingDates: business slug=%s is inactive", req.Slug)
		return nil, ErrBusinessNotFound
	}

	// 3. Резолвим таймзону бизнеса
	loc, err := business.Location()
	if err != nil {
		uc.logger.Warn("GetBookingDates: unknown timezone %q for business=%s, using UTC", business.Timezone, business.ID)
		loc = time.UTC
	}

	// 4. Перебираем дни окна предварительной записи
	now := uc.timeProvider.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	// Запрошенное ограничение не расширяет окно бизнеса
	advanceDays := int(business.EffectiveAdvanceDays())
	if req.Days != nil && int(*req.Days) < advanceDays {
		advanceDays = int(*req.Days)
	}
	dates := make([]time.Time, 0, advanceDays)

	for offset := 0; offset <= advanceDays; offset++ {
		day := today.AddDate(0, 0, offset)
		hours := business.OperatingHours.ForWeekday(day.Weekday())
		if !hours.IsOpen() {
			continue
		}

		openTime, err := types.NewTimeStringFromString(*hours.Open)
		if err != nil {
			uc.logger.Warn("GetBookingDates: invalid open time %q for business=%s", *hours.Open, business.ID)
			continue
		}
		closeTime, err := types.NewTimeStringFromString(*hours.Close)
		if err != nil {
			uc.logger.Warn("GetBookingDates: invalid close time %q for business=%s", *hours.Close, business.ID)
			continue
		}
		if !openTime.IsBefore(closeTime) {
			continue
		}

		// Для сегодняшнего дня проверяем, что бизнес еще не закрылся
		if offset == 0 {
			closeAt, err := closeTime.At(day, loc)
			if err != nil || !now.Before(closeAt) {
				continue
			}
		}

		dates = append(dates, day)
	}

	uc.logger.Info("GetBookingDates: %d open dates for business=%s", len(dates), business.ID)

	return &Response{
		BusinessID: business.ID,
		Timezone:   loc.String(),
		Dates:      dates,
	}, nil
}
