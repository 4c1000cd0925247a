package update_business_settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/service/settings/models"
)

// SettingsService интерфейс сервиса настроек
type SettingsService interface {
	Update(ctx context.Context, businessID uuid.UUID, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
