package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
)

// Request модели

// DayHoursDTO расписание одного дня недели
type DayHoursDTO struct {
	Open    *string `json:"open,omitempty"`
	Close   *string `json:"close,omitempty"`
	Enabled bool    `json:"enabled"`
}

// OperatingHoursDTO расписание работы по дням недели
type OperatingHoursDTO struct {
	Monday    DayHoursDTO `json:"mon"`
	Tuesday   DayHoursDTO `json:"tue"`
	Wednesday DayHoursDTO `json:"wed"`
	Thursday  DayHoursDTO `json:"thu"`
	Friday    DayHoursDTO `json:"fri"`
	Saturday  DayHoursDTO `json:"sat"`
	Sunday    DayHoursDTO `json:"sun"`
}

// UpdateSettingsRequest запрос на обновление настроек бизнеса
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	UserID               int64              `json:"-"`
	Timezone             *string            `json:"timezone,omitempty"`
	OperatingHours       *OperatingHoursDTO `json:"operatingHours,omitempty"`
	BufferMinutes        *int64             `json:"bufferMinutes,omitempty"`
	SlotStepMinutes      *int64             `json:"slotStepMinutes,omitempty"`
	SmartDurationEnabled *bool              `json:"smartDurationEnabled,omitempty"`
	AdvanceBookingDays   *int64             `json:"advanceBookingDays,omitempty"`
}

// Response модели

// SettingsResponse ответ с настройками бизнеса
type SettingsResponse struct {
	BusinessID           uuid.UUID         `json:"businessId"`
	Slug                 string            `json:"slug"`
	Name                 string            `json:"name"`
	Timezone             string            `json:"timezone"`
	OperatingHours       OperatingHoursDTO `json:"operatingHours"`
	BufferMinutes        int64             `json:"bufferMinutes"`
	SlotStepMinutes      int64             `json:"slotStepMinutes"`
	SmartDurationEnabled bool              `json:"smartDurationEnabled"`
	AdvanceBookingDays   int64             `json:"advanceBookingDays"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// Методы конвертации

func dayToDTO(d domain.DayHours) DayHoursDTO {
	return DayHoursDTO{Open: d.Open, Close: d.Close, Enabled: d.Enabled}
}

func dayFromDTO(d DayHoursDTO) domain.DayHours {
	return domain.DayHours{Open: d.Open, Close: d.Close, Enabled: d.Enabled}
}

// HoursToDTO конвертирует domain расписание в DTO
func HoursToDTO(h domain.OperatingHours) OperatingHoursDTO {
	return OperatingHoursDTO{
		Monday:    dayToDTO(h.Monday),
		Tuesday:   dayToDTO(h.Tuesday),
		Wednesday: dayToDTO(h.Wednesday),
		Thursday:  dayToDTO(h.Thursday),
		Friday:    dayToDTO(h.Friday),
		Saturday:  dayToDTO(h.Saturday),
		Sunday:    dayToDTO(h.Sunday),
	}
}

// HoursFromDTO конвертирует DTO расписание в domain модель
func HoursFromDTO(h OperatingHoursDTO) domain.OperatingHours {
	return domain.OperatingHours{
		Monday:    dayFromDTO(h.Monday),
		Tuesday:   dayFromDTO(h.Tuesday),
		Wednesday: dayFromDTO(h.Wednesday),
		Thursday:  dayFromDTO(h.Thursday),
		Friday:    dayFromDTO(h.Friday),
		Saturday:  dayFromDTO(h.Saturday),
		Sunday:    dayFromDTO(h.Sunday),
	}
}

// FromDomainBusiness конвертирует domain модель в DTO настроек
func FromDomainBusiness(b *domain.Business) *SettingsResponse {
	if b == nil {
		return nil
	}

	return &SettingsResponse{
		BusinessID:           b.ID,
		Slug:                 b.Slug,
		Name:                 b.Name,
		Timezone:             b.Timezone,
		OperatingHours:       HoursToDTO(b.OperatingHours),
		BufferMinutes:        b.BufferMinutes,
		SlotStepMinutes:      b.SlotStepMinutes,
		SmartDurationEnabled: b.SmartDurationEnabled,
		AdvanceBookingDays:   b.AdvanceBookingDays,
		UpdatedAt:            b.UpdatedAt,
	}
}

// ApplyToBusiness применяет обновления к бизнесу
// Обновляются только непустые (not nil) поля из request
func (r *UpdateSettingsRequest) ApplyToBusiness(b *domain.Business) {
	if r.Timezone != nil {
		b.Timezone = *r.Timezone
	}
	if r.OperatingHours != nil {
		b.OperatingHours = HoursFromDTO(*r.OperatingHours)
	}
	if r.BufferMinutes != nil {
		b.BufferMinutes = *r.BufferMinutes
	}
	if r.SlotStepMinutes != nil {
		b.SlotStepMinutes = *r.SlotStepMinutes
	}
	if r.SmartDurationEnabled != nil {
		b.SmartDurationEnabled = *r.SmartDurationEnabled
	}
	if r.AdvanceBookingDays != nil {
		b.AdvanceBookingDays = *r.AdvanceBookingDays
	}
}
