package domain

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType kind of a promo discount
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// PromoRule is a time-targeted discount configured by the business.
// Rules are evaluated in stored order (Position ascending); the first
// matching rule wins for a given slot.
type PromoRule struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Label      string
	// DaysOfWeek uses 0=Sunday .. 6=Saturday, matching time.Weekday.
	DaysOfWeek []int64
	StartTime  string // "HH:MM", inclusive
	EndTime    string // "HH:MM", exclusive
	// ServiceIDs empty means the rule applies to every service.
	ServiceIDs    []uuid.UUID
	DiscountType  DiscountType
	DiscountValue int64
	Enabled       bool
	Position      int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppliesOn reports whether the rule covers the weekday and wall-clock
// time of a slot. Time window is half-open: [StartTime, EndTime).
func (r *PromoRule) AppliesOn(weekday time.Weekday, clock string) bool {
	if !r.Enabled {
		return false
	}

	dayMatch := false
	for _, d := range r.DaysOfWeek {
		if d == int64(weekday) {
			dayMatch = true
			break
		}
	}
	if !dayMatch {
		return false
	}

	// "HH:MM" в фиксированном формате сравнивается лексикографически
	return clock >= r.StartTime && clock < r.EndTime
}

// AppliesToService reports whether the rule covers the given service
func (r *PromoRule) AppliesToService(serviceID uuid.UUID) bool {
	if len(r.ServiceIDs) == 0 {
		return true
	}
	for _, id := range r.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Discount is the promo outcome attached to an available slot
type Discount struct {
	Type   DiscountType
	Value  int64
	Label  string
	RuleID uuid.UUID
}

// AmountOff returns the discount amount in minor units for a price.
// Percent discounts round half up; fixed discounts never exceed the price.
func (d *Discount) AmountOff(price int64) int64 {
	switch d.Type {
	case DiscountPercent:
		return (price*d.Value + 50) / 100
	case DiscountFixed:
		if d.Value > price {
			return price
		}
		return d.Value
	default:
		return 0
	}
}

// FinalPrice returns the price after the discount, never negative
func (d *Discount) FinalPrice(price int64) int64 {
	final := price - d.AmountOff(price)
	if final < 0 {
		return 0
	}
	return final
}
