package get_business_settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/service/settings/models"
)

// SettingsService интерфейс сервиса настроек
type SettingsService interface {
	Get(ctx context.Context, businessID uuid.UUID, userID int64) (*models.SettingsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
