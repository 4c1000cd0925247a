package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	businessRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/catalog"
	"github.com/m04kA/BRB-AvailabilityService/pkg/ptr"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	businessRepo    BusinessRepository
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка конфликтов и вставка идут в сериализуемой транзакции
// с блокировкой пересекающихся записей (FOR UPDATE), чтобы два клиента
// не заняли один слот одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: slug=%s, service=%s, barber=%s, startAt=%s",
		req.Slug, req.ServiceID, req.BarberID, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бизнес по slug
	business, err := uc.businessRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateAppointment: business slug=%s not found", req.Slug)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get business slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.Active {
		uc.logger.Warn("CreateAppointment: business slug=%s is inactive", req.Slug)
		return nil, ErrBusinessNotFound
	}

	// 4. Резолвим таймзону бизнеса
	loc, err := business.Location()
	if err != nil {
		uc.logger.Warn("CreateAppointment: unknown timezone %q for business=%s, using UTC", business.Timezone, business.ID)
		loc = time.UTC
	}

	// 5. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, business.ID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 6. Получаем барбера
	barber, err := uc.catalogRepo.GetBarber(ctx, business.ID, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("CreateAppointment: barber id=%s is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 7. Время начала не в прошлом
	if req.StartAt.Before(now) {
		uc.logger.Warn("CreateAppointment: startAt=%s is in the past", req.StartAt.Format(time.RFC3339))
		return nil, ErrTooLateToBook
	}

	// 8. Валидация даты с учетом окна предварительной записи
	if err := validateDate(req.StartAt, now, loc, business.EffectiveAdvanceDays()); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// Запись создается с номинальной длительностью из каталога:
	// предсказанная длительность влияет только на выдачу слотов
	durationMinutes := service.DurationMinutes
	windowMinutes := durationMinutes + business.BufferMinutes

	// 9. Рабочие часы и выравнивание по сетке
	if err := validateWithinHours(business, req.StartAt, loc, windowMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: hours validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 10. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		startLocal := req.StartAt.In(loc)
		dayStart := time.Date(startLocal.Year(), startLocal.Month(), startLocal.Day(), 0, 0, 0, 0, loc)
		dayEnd := dayStart.Add(24 * time.Hour)

		// 10.1. Читаем записи дня с блокировкой строк
		appointments, err := uc.appointmentRepo.GetForRange(txCtx, business.ID, ptr.Ptr(req.BarberID), dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.GetOverlapping(txCtx, business.ID, ptr.Ptr(req.BarberID), dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		// 10.2. Перепроверяем доступность окна внутри транзакции
		busy, err := buildBusyIntervals(appointments, blocks, dayStart)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to build busy intervals for business=%s: %v", business.ID, err)
			return fmt.Errorf("%w: failed to build busy intervals: %v", ErrInternal, err)
		}
		window := domain.Interval{
			Start: req.StartAt,
			End:   req.StartAt.Add(time.Duration(windowMinutes) * time.Minute),
		}

		if hasConflict(window, busy) {
			uc.logger.Warn("CreateAppointment: slot %s is taken for barber=%s",
				req.StartAt.Format(time.RFC3339), req.BarberID)
			return ErrSlotNotAvailable
		}

		// 10.3. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			BusinessID:      business.ID,
			BarberID:        req.BarberID,
			ServiceID:       service.ID,
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ScheduledAt:     req.StartAt,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		BusinessID:      result.BusinessID,
		BarberID:        result.BarberID,
		ServiceID:       result.ServiceID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ScheduledAt:     result.ScheduledAt,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
