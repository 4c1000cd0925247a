package get_day_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
)

// Request модель запроса на получение слотов на день
type Request struct {
	Slug      string     // Публичный slug бизнеса
	ServiceID uuid.UUID  // ID услуги
	BarberID  *uuid.UUID // ID барбера (nil - любой барбер)
	Date      time.Time  // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       time.Time         // Дата, на которую запрашивались слоты
	BusinessID uuid.UUID         // ID бизнеса
	ServiceID  uuid.UUID         // ID услуги
	BarberID   *uuid.UUID        // ID барбера (если фильтровали)
	Timezone   string            // Таймзона, в которой вычислены слоты
	Slots      []domain.TimeSlot // Все кандидаты дня, включая недоступные
	Meta       Meta              // Параметры вычисления
}

// Meta параметры, с которыми были вычислены слоты
type Meta struct {
	StepMinutes     int64 // Шаг сетки кандидатов
	DurationMinutes int64 // Эффективная длительность услуги
	BufferMinutes   int64 // Буфер после записи
	SmartDuration   bool  // Использовалась ли предсказанная длительность
}
