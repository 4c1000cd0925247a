package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание записи
type Request struct {
	Slug        string    // Публичный slug бизнеса
	ServiceID   uuid.UUID // ID услуги
	BarberID    uuid.UUID // ID барбера
	StartAt     time.Time // Время начала записи
	ClientName  string    // Имя клиента
	ClientPhone *string   // Телефон клиента
	Notes       *string   // Пожелания клиента
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	BarberID        uuid.UUID
	ServiceID       uuid.UUID
	ClientName      string
	ClientPhone     *string
	ScheduledAt     time.Time
	DurationMinutes int64
	Status          string
	ServiceName     string
	ServicePrice    int64
	Notes           *string
	CreatedAt       time.Time
}
