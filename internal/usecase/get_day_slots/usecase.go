package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	businessRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/catalog"
)

// UseCase use case для вычисления слотов на день
type UseCase struct {
	businessRepo    BusinessRepository
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	statsRepo       StatsRepository
	promoRepo       PromoRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	statsRepo StatsRepository,
	promoRepo PromoRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		statsRepo:       statsRepo,
		promoRepo:       promoRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case вычисления слотов на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: slug=%s, service=%s, date=%s",
		req.Slug, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бизнес по slug. Неактивный бизнес для публичного API
	// неотличим от несуществующего.
	business, err := uc.businessRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetDaySlots: business slug=%s not found", req.Slug)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get business slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.Active {
		uc.logger.Warn("GetDaySlots: business slug=%s is inactive", req.Slug)
		return nil, ErrBusinessNotFound
	}

	// 4. Резолвим таймзону бизнеса. Неизвестная таймзона - проблема
	// данных, а не клиента: деградируем до UTC и пишем в лог.
	loc, err := business.Location()
	if err != nil {
		uc.logger.Warn("GetDaySlots: unknown timezone %q for business=%s, using UTC", business.Timezone, business.ID)
		loc = time.UTC
	}

	// 5. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, business.ID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetDaySlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("GetDaySlots: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 6. Получаем барбера, если указан
	if req.BarberID != nil {
		barber, err := uc.catalogRepo.GetBarber(ctx, business.ID, *req.BarberID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrBarberNotFound) {
				uc.logger.Warn("GetDaySlots: barber id=%s not found", *req.BarberID)
				return nil, ErrBarberNotFound
			}
			uc.logger.Error("GetDaySlots: failed to get barber id=%s: %v", *req.BarberID, err)
			return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
		}
		if !barber.Active {
			uc.logger.Warn("GetDaySlots: barber id=%s is inactive", *req.BarberID)
			return nil, ErrBarberNotFound
		}
	}

	// 7. Валидация даты в таймзоне бизнеса
	if err := validateDate(req.Date, now, loc, business.EffectiveAdvanceDays()); err != nil {
		uc.logger.Warn("GetDaySlots: date validation failed: %v", err)
		return nil, err
	}

	// 8. Вычисляем эффективную длительность услуги
	durationMinutes, smartApplied := uc.effectiveDuration(ctx, business, service, req.BarberID)

	stepMinutes := business.StepMinutes()
	bufferMinutes := business.BufferMinutes

	// 9. Границы календарного дня в таймзоне бизнеса
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	// 10. Получаем записи и блокировки, пересекающиеся с днем
	appointments, err := uc.appointmentRepo.GetForRange(ctx, business.ID, req.BarberID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetOverlapping(ctx, business.ID, req.BarberID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 11. Собираем занятые интервалы
	busy, err := buildBusyIntervals(appointments, blocks, dayStart)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to build busy intervals for business=%s: %v", business.ID, err)
		return nil, fmt.Errorf("%w: failed to build busy intervals: %v", ErrInternal, err)
	}

	// 12. Генерируем сетку слотов
	hours := business.OperatingHours.ForWeekday(dayStart.Weekday())
	slots, err := generateSlots(hours, dayStart, loc, now, stepMinutes, durationMinutes, bufferMinutes, busy)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 13. Навешиваем промо-скидки на доступные слоты
	rules, err := uc.promoRepo.ListByBusiness(ctx, business.ID)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get promo rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get promo rules: %v", ErrInternal, err)
	}

	skipped := enrichSlots(slots, rules, loc, service.ID, service.Price)
	for _, ruleID := range skipped {
		uc.logger.Warn("GetDaySlots: skipped malformed promo rule id=%s for business=%s", ruleID, business.ID)
	}

	uc.logger.Info("GetDaySlots: generated %d slots for business=%s, service=%s, date=%s",
		len(slots), business.ID, service.ID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		BusinessID: business.ID,
		ServiceID:  service.ID,
		BarberID:   req.BarberID,
		Timezone:   loc.String(),
		Slots:      slots,
		Meta: Meta{
			StepMinutes:     stepMinutes,
			DurationMinutes: durationMinutes,
			BufferMinutes:   bufferMinutes,
			SmartDuration:   smartApplied,
		},
	}, nil
}
