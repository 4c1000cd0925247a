package get_day_slots

import (
	"context"

	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/get_day_slots"
)

// UseCase интерфейс usecase для получения слотов на день
type UseCase interface {
	Execute(ctx context.Context, req *get_day_slots.Request) (*get_day_slots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
