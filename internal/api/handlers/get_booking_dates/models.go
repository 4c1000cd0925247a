package get_booking_dates

import (
	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/get_booking_dates"
)

// Response модель ответа со списком дат, доступных для записи
type Response struct {
	BusinessID uuid.UUID `json:"businessId"`
	Timezone   string    `json:"timezone"`
	Dates      []string  `json:"dates"` // "YYYY-MM-DD" по возрастанию
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *get_booking_dates.Response) *Response {
	dates := make([]string, len(resp.Dates))
	for i, date := range resp.Dates {
		dates[i] = date.Format(domain.DateFormat)
	}

	return &Response{
		BusinessID: resp.BusinessID,
		Timezone:   resp.Timezone,
		Dates:      dates,
	}
}
