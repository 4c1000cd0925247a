package create_appointment

import (
	"context"

	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/create_appointment"
)

// UseCase интерфейс usecase для создания записи
type UseCase interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
