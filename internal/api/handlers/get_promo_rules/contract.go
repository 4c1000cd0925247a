package get_promo_rules

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/service/promorules/models"
)

// PromoService интерфейс сервиса промо-правил
type PromoService interface {
	List(ctx context.Context, businessID uuid.UUID, userID int64) (*models.RulesResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
