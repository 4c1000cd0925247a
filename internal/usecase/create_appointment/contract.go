package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
}

// CatalogRepository интерфейс репозитория каталога услуг и барберов
type CatalogRepository interface {
	GetService(ctx context.Context, businessID, serviceID uuid.UUID) (*domain.Service, error)
	GetBarber(ctx context.Context, businessID, barberID uuid.UUID) (*domain.Barber, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetForRange(ctx context.Context, businessID uuid.UUID, barberID *uuid.UUID, from, to time.Time) ([]*domain.Appointment, error)
}

// BlockRepository интерфейс репозитория блокировок времени
type BlockRepository interface {
	GetOverlapping(ctx context.Context, businessID uuid.UUID, barberID *uuid.UUID, from, to time.Time) ([]*domain.Block, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
