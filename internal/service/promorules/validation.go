package promorules

import (
	"fmt"
	"time"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/internal/service/promorules/models"
)

// validateRules валидирует набор правил целиком.
// Возвращает предупреждения о пересекающихся окнах: пересечение не
// ошибка (порядок правил его разрешает), но менеджеру стоит о нем знать.
func validateRules(rules []models.PromoRuleInput) ([]string, error) {
	if len(rules) > domain.MaxPromoRules {
		return nil, fmt.Errorf("%w: at most %d rules allowed", ErrInvalidInput, domain.MaxPromoRules)
	}

	for i, rule := range rules {
		if err := validateRule(i, rule); err != nil {
			return nil, err
		}
	}

	return overlapWarnings(rules), nil
}

// validateRule валидирует одно правило
func validateRule(index int, rule models.PromoRuleInput) error {
	if rule.Label == "" {
		return fmt.Errorf("%w: rule %d: label is required", ErrInvalidInput, index)
	}
	if len(rule.Label) > domain.MaxPromoLabelLength {
		return fmt.Errorf("%w: rule %d: label must be at most %d characters",
			ErrInvalidInput, index, domain.MaxPromoLabelLength)
	}

	if len(rule.DaysOfWeek) == 0 {
		return fmt.Errorf("%w: rule %d: daysOfWeek is required", ErrInvalidInput, index)
	}
	for _, d := range rule.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: rule %d: day %d is out of range 0..6", ErrInvalidInput, index, d)
		}
	}

	if _, err := time.Parse(domain.TimeFormat, rule.StartTime); err != nil {
		return fmt.Errorf("%w: rule %d: invalid startTime %q", ErrInvalidInput, index, rule.StartTime)
	}
	if _, err := time.Parse(domain.TimeFormat, rule.EndTime); err != nil {
		return fmt.Errorf("%w: rule %d: invalid endTime %q", ErrInvalidInput, index, rule.EndTime)
	}
	if rule.StartTime >= rule.EndTime {
		return fmt.Errorf("%w: rule %d: startTime must be before endTime", ErrInvalidInput, index)
	}

	switch domain.DiscountType(rule.DiscountType) {
	case domain.DiscountPercent:
		if rule.DiscountValue < 1 || rule.DiscountValue > 100 {
			return fmt.Errorf("%w: rule %d: percent value must be between 1 and 100", ErrInvalidInput, index)
		}
	case domain.DiscountFixed:
		if rule.DiscountValue <= 0 {
			return fmt.Errorf("%w: rule %d: fixed value must be positive", ErrInvalidInput, index)
		}
	default:
		return fmt.Errorf("%w: rule %d: unknown discountType %q", ErrInvalidInput, index, rule.DiscountType)
	}

	return nil
}

// overlapWarnings находит пары правил с пересекающимися окнами
// в один и тот же день недели
func overlapWarnings(rules []models.PromoRuleInput) []string {
	warnings := make([]string, 0)

	for i := 0; i < len(rules); i++ {
		for j := i + 1; j < len(rules); j++ {
			if !shareDay(rules[i].DaysOfWeek, rules[j].DaysOfWeek) {
				continue
			}
			// Полуоткрытые окна [start, end): лексикографическое сравнение HH:MM
			if rules[i].StartTime < rules[j].EndTime && rules[j].StartTime < rules[i].EndTime {
				warnings = append(warnings, fmt.Sprintf(
					"rules %d (%q) and %d (%q) overlap; rule %d wins in the overlap",
					i, rules[i].Label, j, rules[j].Label, i))
			}
		}
	}

	return warnings
}

// shareDay проверяет, что у двух правил есть общий день недели
func shareDay(a, b []int64) bool {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}
