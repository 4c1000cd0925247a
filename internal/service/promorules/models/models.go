package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
)

// Request модели

// PromoRuleInput одно промо-правило в запросе на замену набора.
// Позиция определяется порядком в списке.
type PromoRuleInput struct {
	Label         string      `json:"label"`
	DaysOfWeek    []int64     `json:"daysOfWeek"` // 0=воскресенье .. 6=суббота
	StartTime     string      `json:"startTime"`  // "HH:MM", включительно
	EndTime       string      `json:"endTime"`    // "HH:MM", исключительно
	ServiceIDs    []uuid.UUID `json:"serviceIds"` // пусто = все услуги
	DiscountType  string      `json:"discountType"`
	DiscountValue int64       `json:"discountValue"`
	Enabled       bool        `json:"enabled"`
}

// ReplaceRulesRequest запрос на полную замену набора правил бизнеса
type ReplaceRulesRequest struct {
	UserID int64            `json:"-"`
	Rules  []PromoRuleInput `json:"rules"`
}

// Response модели

// PromoRuleResponse промо-правило в ответе
type PromoRuleResponse struct {
	ID            uuid.UUID   `json:"id"`
	Label         string      `json:"label"`
	DaysOfWeek    []int64     `json:"daysOfWeek"`
	StartTime     string      `json:"startTime"`
	EndTime       string      `json:"endTime"`
	ServiceIDs    []uuid.UUID `json:"serviceIds"`
	DiscountType  string      `json:"discountType"`
	DiscountValue int64       `json:"discountValue"`
	Enabled       bool        `json:"enabled"`
	Position      int64       `json:"position"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// RulesResponse ответ со списком правил и предупреждениями валидации
type RulesResponse struct {
	Rules    []PromoRuleResponse `json:"rules"`
	Warnings []string            `json:"warnings,omitempty"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.PromoRule) PromoRuleResponse {
	serviceIDs := r.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []uuid.UUID{}
	}
	days := r.DaysOfWeek
	if days == nil {
		days = []int64{}
	}

	return PromoRuleResponse{
		ID:            r.ID,
		Label:         r.Label,
		DaysOfWeek:    days,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		ServiceIDs:    serviceIDs,
		DiscountType:  string(r.DiscountType),
		DiscountValue: r.DiscountValue,
		Enabled:       r.Enabled,
		Position:      r.Position,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainRules конвертирует список domain моделей в DTO
func FromDomainRules(rules []*domain.PromoRule, warnings []string) *RulesResponse {
	resp := &RulesResponse{
		Rules:    make([]PromoRuleResponse, len(rules)),
		Warnings: warnings,
	}
	for i, rule := range rules {
		resp.Rules[i] = FromDomainRule(rule)
	}
	return resp
}

// ToDomainRule конвертирует входную модель в domain правило
func (r *PromoRuleInput) ToDomainRule(businessID uuid.UUID, position int64) *domain.PromoRule {
	return &domain.PromoRule{
		BusinessID:    businessID,
		Label:         r.Label,
		DaysOfWeek:    r.DaysOfWeek,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		ServiceIDs:    r.ServiceIDs,
		DiscountType:  domain.DiscountType(r.DiscountType),
		DiscountValue: r.DiscountValue,
		Enabled:       r.Enabled,
		Position:      position,
	}
}
