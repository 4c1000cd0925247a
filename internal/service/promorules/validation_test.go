package promorules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-AvailabilityService/internal/service/promorules/models"
)

func validRule() models.PromoRuleInput {
	return models.PromoRuleInput{
		Label:         "Morning -10%",
		DaysOfWeek:    []int64{1, 2, 3},
		StartTime:     "09:00",
		EndTime:       "12:00",
		DiscountType:  "percent",
		DiscountValue: 10,
		Enabled:       true,
	}
}

func TestValidateRules_Valid(t *testing.T) {
	warnings, err := validateRules([]models.PromoRuleInput{validRule()})
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidateRules_TooManyRules(t *testing.T) {
	rules := make([]models.PromoRuleInput, 21)
	for i := range rules {
		rules[i] = validRule()
	}

	_, err := validateRules(rules)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRules_RuleBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.PromoRuleInput)
	}{
		{"empty label", func(r *models.PromoRuleInput) { r.Label = "" }},
		{"label too long", func(r *models.PromoRuleInput) { r.Label = strings.Repeat("x", 61) }},
		{"no days", func(r *models.PromoRuleInput) { r.DaysOfWeek = nil }},
		{"day out of range", func(r *models.PromoRuleInput) { r.DaysOfWeek = []int64{7} }},
		{"negative day", func(r *models.PromoRuleInput) { r.DaysOfWeek = []int64{-1} }},
		{"bad start time", func(r *models.PromoRuleInput) { r.StartTime = "9am" }},
		{"bad end time", func(r *models.PromoRuleInput) { r.EndTime = "25:00" }},
		{"start equals end", func(r *models.PromoRuleInput) { r.StartTime = "12:00" }},
		{"start after end", func(r *models.PromoRuleInput) { r.StartTime = "14:00" }},
		{"unknown discount type", func(r *models.PromoRuleInput) { r.DiscountType = "loyalty" }},
		{"percent zero", func(r *models.PromoRuleInput) { r.DiscountValue = 0 }},
		{"percent over 100", func(r *models.PromoRuleInput) { r.DiscountValue = 150 }},
		{"fixed zero", func(r *models.PromoRuleInput) { r.DiscountType = "fixed"; r.DiscountValue = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validRule()
			tt.mutate(&rule)
			_, err := validateRules([]models.PromoRuleInput{rule})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateRules_FixedLargeValueAllowed(t *testing.T) {
	rule := validRule()
	rule.DiscountType = "fixed"
	rule.DiscountValue = 100000 // клампится к цене при применении

	_, err := validateRules([]models.PromoRuleInput{rule})
	assert.NoError(t, err)
}

func TestValidateRules_OverlapWarnings(t *testing.T) {
	first := validRule()
	second := validRule()
	second.Label = "Brunch -5%"
	second.StartTime = "11:00"
	second.EndTime = "14:00"

	warnings, err := validateRules([]models.PromoRuleInput{first, second})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "overlap")

	// Касание границ пересечением не считается
	second.StartTime = "12:00"
	warnings, err = validateRules([]models.PromoRuleInput{first, second})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Разные дни недели не пересекаются
	second.StartTime = "11:00"
	second.DaysOfWeek = []int64{5, 6}
	warnings, err = validateRules([]models.PromoRuleInput{first, second})
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
