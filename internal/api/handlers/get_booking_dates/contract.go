package get_booking_dates

import (
	"context"

	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/get_booking_dates"
)

// UseCase интерфейс usecase для получения дат, доступных для записи
type UseCase interface {
	Execute(ctx context.Context, req *get_booking_dates.Request) (*get_booking_dates.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
