package get_day_slots

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/get_day_slots"
)

// DiscountDTO скидка, применимая к слоту
type DiscountDTO struct {
	Type   string    `json:"type"`
	Value  int64     `json:"value"`
	Label  string    `json:"label"`
	RuleID uuid.UUID `json:"ruleId"`
}

// SlotDTO один кандидат-слот дня
type SlotDTO struct {
	Datetime  time.Time    `json:"datetime"`
	Available bool         `json:"available"`
	Discount  *DiscountDTO `json:"discount"`
}

// MetaDTO параметры, с которыми были вычислены слоты
type MetaDTO struct {
	StepMinutes     int64 `json:"stepMinutes"`
	DurationMinutes int64 `json:"durationMinutes"`
	BufferMinutes   int64 `json:"bufferMinutes"`
	SmartDuration   bool  `json:"smartDuration"`
}

// Response модель ответа со слотами на день
type Response struct {
	Date       string     `json:"date"`
	BusinessID uuid.UUID  `json:"businessId"`
	ServiceID  uuid.UUID  `json:"serviceId"`
	BarberID   *uuid.UUID `json:"barberId,omitempty"`
	Timezone   string     `json:"timezone"`
	Slots      []SlotDTO  `json:"slots"`
	Meta       MetaDTO    `json:"meta"`
}

// ToUseCaseRequest собирает запрос usecase из path и query параметров
func ToUseCaseRequest(slug string, query url.Values) (*get_day_slots.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	serviceID, err := uuid.Parse(query.Get("serviceId"))
	if err != nil {
		return nil, fmt.Errorf("invalid serviceId: %v", err)
	}

	var barberID *uuid.UUID
	if raw := query.Get("barberId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid barberId: %v", err)
		}
		barberID = &parsed
	}

	return &get_day_slots.Request{
		Slug:      slug,
		ServiceID: serviceID,
		BarberID:  barberID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *get_day_slots.Response) *Response {
	slots := make([]SlotDTO, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotDTO{
			Datetime:  slot.StartAt,
			Available: slot.Available,
			Discount:  discountToDTO(slot.Discount),
		}
	}

	return &Response{
		Date:       resp.Date.Format(domain.DateFormat),
		BusinessID: resp.BusinessID,
		ServiceID:  resp.ServiceID,
		BarberID:   resp.BarberID,
		Timezone:   resp.Timezone,
		Slots:      slots,
		Meta: MetaDTO{
			StepMinutes:     resp.Meta.StepMinutes,
			DurationMinutes: resp.Meta.DurationMinutes,
			BufferMinutes:   resp.Meta.BufferMinutes,
			SmartDuration:   resp.Meta.SmartDuration,
		},
	}
}

func discountToDTO(d *domain.Discount) *DiscountDTO {
	if d == nil {
		return nil
	}
	return &DiscountDTO{
		Type:   string(d.Type),
		Value:  d.Value,
		Label:  d.Label,
		RuleID: d.RuleID,
	}
}
