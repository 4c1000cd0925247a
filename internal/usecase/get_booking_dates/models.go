package get_booking_dates

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на получение дат, доступных для записи
type Request struct {
	Slug string // Публичный slug бизнеса
	Days *int64 // Ограничение окна в днях (nil - все окно бизнеса)
}

// Response модель ответа со списком дат
type Response struct {
	BusinessID uuid.UUID   // ID бизнеса
	Timezone   string      // Таймзона, в которой вычислены даты
	Dates      []time.Time // Полночи открытых дней в таймзоне бизнеса, по возрастанию
}
