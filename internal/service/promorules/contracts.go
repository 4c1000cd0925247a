package promorules

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
)

// PromoRepository интерфейс репозитория промо-правил
type PromoRepository interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*domain.PromoRule, error)
	ReplaceForBusiness(ctx context.Context, businessID uuid.UUID, rules []*domain.PromoRule) error
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
