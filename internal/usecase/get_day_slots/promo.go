package get_day_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
)

// evaluatePromo находит первое подходящее правило для слота.
// Правила перебираются в порядке хранения: первое совпадение выигрывает,
// скидки не суммируются. Фиксированная скидка ограничивается ценой
// услуги - цена после скидки не бывает отрицательной. Некорректные
// правила (мусор в окне времени, неизвестный тип скидки, неположительное
// значение) пропускаются, их ID возвращаются для логирования.
func evaluatePromo(
	rules []*domain.PromoRule,
	slotStart time.Time,
	loc *time.Location,
	serviceID uuid.UUID,
	servicePrice int64,
) (*domain.Discount, []uuid.UUID) {
	local := slotStart.In(loc)
	clock := local.Format(domain.TimeFormat)
	weekday := local.Weekday()

	var skipped []uuid.UUID

	for _, rule := range rules {
		if malformed(rule) {
			skipped = append(skipped, rule.ID)
			continue
		}

		if !rule.AppliesOn(weekday, clock) {
			continue
		}
		if !rule.AppliesToService(serviceID) {
			continue
		}

		discount := &domain.Discount{
			Type:   rule.DiscountType,
			Value:  rule.DiscountValue,
			Label:  rule.Label,
			RuleID: rule.ID,
		}
		if rule.DiscountType == domain.DiscountFixed {
			discount.Value = discount.AmountOff(servicePrice)
		}
		return discount, skipped
	}

	return nil, skipped
}

// malformed проверяет, что правило нельзя безопасно применить.
// Одно испорченное правило не должно ломать выдачу слотов целиком.
func malformed(rule *domain.PromoRule) bool {
	if _, err := time.Parse(domain.TimeFormat, rule.StartTime); err != nil {
		return true
	}
	if _, err := time.Parse(domain.TimeFormat, rule.EndTime); err != nil {
		return true
	}
	if rule.StartTime >= rule.EndTime {
		return true
	}
	if rule.DiscountType != domain.DiscountPercent && rule.DiscountType != domain.DiscountFixed {
		return true
	}
	if rule.DiscountValue <= 0 {
		return true
	}
	if rule.DiscountType == domain.DiscountPercent && rule.DiscountValue > 100 {
		return true
	}
	for _, d := range rule.DaysOfWeek {
		if d < 0 || d > 6 {
			return true
		}
	}
	return false
}

// enrichSlots навешивает скидки на доступные слоты. Недоступные слоты
// не трогаем: показывать акцию на занятое время бессмысленно.
// Возвращает ID пропущенных некорректных правил без дубликатов.
func enrichSlots(
	slots []domain.TimeSlot,
	rules []*domain.PromoRule,
	loc *time.Location,
	serviceID uuid.UUID,
	servicePrice int64,
) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	skippedTotal := make([]uuid.UUID, 0)

	for i := range slots {
		if !slots[i].Available {
			continue
		}

		discount, skipped := evaluatePromo(rules, slots[i].StartAt, loc, serviceID, servicePrice)
		slots[i].Discount = discount

		for _, id := range skipped {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			skippedTotal = append(skippedTotal, id)
		}
	}

	return skippedTotal
}
