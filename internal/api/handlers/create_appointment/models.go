package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/create_appointment"
)

// Request модель HTTP запроса на создание записи
type Request struct {
	ServiceID   uuid.UUID `json:"serviceId"`
	BarberID    uuid.UUID `json:"barberId"`
	StartAt     time.Time `json:"startAt"`
	ClientName  string    `json:"clientName"`
	ClientPhone *string   `json:"clientPhone,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// Response модель HTTP ответа с созданной записью
type Response struct {
	ID              uuid.UUID `json:"id"`
	BusinessID      uuid.UUID `json:"businessId"`
	BarberID        uuid.UUID `json:"barberId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	ClientName      string    `json:"clientName"`
	ClientPhone     *string   `json:"clientPhone,omitempty"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int64     `json:"durationMinutes"`
	Status          string    `json:"status"`
	ServiceName     string    `json:"serviceName"`
	ServicePrice    int64     `json:"servicePrice"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель usecase
func (r *Request) ToUseCaseRequest(slug string) *create_appointment.Request {
	return &create_appointment.Request{
		Slug:        slug,
		ServiceID:   r.ServiceID,
		BarberID:    r.BarberID,
		StartAt:     r.StartAt,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Notes:       r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *create_appointment.Response) *Response {
	return &Response{
		ID:              resp.ID,
		BusinessID:      resp.BusinessID,
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		ScheduledAt:     resp.ScheduledAt,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
	}
}
