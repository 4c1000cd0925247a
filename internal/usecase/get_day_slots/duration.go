package get_day_slots

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	statsRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/durationstats"
)

// effectiveDuration вычисляет длительность услуги для расчета слотов.
//
// При включенном smart duration используется каскад агрегатов:
//  1. средняя фактическая длительность у конкретного барбера
//     (минимум domain.MinBarberSamples замеров)
//  2. средняя по услуге у всех барберов (минимум domain.MinServiceSamples)
//  3. номинальная длительность из каталога
//
// Ошибки чтения статистики деградируют до номинала: выдача слотов
// важнее точности предсказания. Второй результат - применился ли агрегат.
func (uc *UseCase) effectiveDuration(
	ctx context.Context,
	business *domain.Business,
	service *domain.Service,
	barberID *uuid.UUID,
) (int64, bool) {
	if !business.SmartDurationEnabled {
		return service.DurationMinutes, false
	}

	if barberID != nil {
		stat, err := uc.statsRepo.Get(ctx, business.ID, service.ID, barberID)
		switch {
		case err == nil && stat.SampleCount >= domain.MinBarberSamples:
			return stat.RoundedMinutes(), true
		case err != nil && !errors.Is(err, statsRepo.ErrStatNotFound):
			uc.logger.Warn("GetDaySlots: barber stat lookup failed, falling back: %v", err)
			return service.DurationMinutes, false
		}
	}

	stat, err := uc.statsRepo.Get(ctx, business.ID, service.ID, nil)
	switch {
	case err == nil && stat.SampleCount >= domain.MinServiceSamples:
		return stat.RoundedMinutes(), true
	case err != nil && !errors.Is(err, statsRepo.ErrStatNotFound):
		uc.logger.Warn("GetDaySlots: service stat lookup failed, falling back: %v", err)
	}

	return service.DurationMinutes, false
}
