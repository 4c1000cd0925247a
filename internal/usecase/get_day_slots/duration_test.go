package get_day_slots

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/ptr"
)

func newDurationUseCase(stats *fakeStatsRepo) *UseCase {
	return &UseCase{
		statsRepo: stats,
		logger:    nopLogger{},
	}
}

func TestEffectiveDuration_SmartDisabled(t *testing.T) {
	business := &domain.Business{ID: uuid.New(), SmartDurationEnabled: false}
	service := &domain.Service{ID: uuid.New(), DurationMinutes: 30}
	barberID := ptr.Ptr(uuid.New())

	stats := &fakeStatsRepo{stats: map[statKey]*domain.DurationStat{
		{serviceID: service.ID, barberID: *barberID}: {AvgActualMinutes: 55, SampleCount: 100},
	}}
	uc := newDurationUseCase(stats)

	minutes, smart := uc.effectiveDuration(context.Background(), business, service, barberID)
	assert.Equal(t, int64(30), minutes, "stats are ignored when smart duration is off")
	assert.False(t, smart)
}

func TestEffectiveDuration_BarberAggregate(t *testing.T) {
	business := &domain.Business{ID: uuid.New(), SmartDurationEnabled: true}
	service := &domain.Service{ID: uuid.New(), DurationMinutes: 30}
	barberID := ptr.Ptr(uuid.New())

	stats := &fakeStatsRepo{stats: map[statKey]*domain.DurationStat{
		{serviceID: service.ID, barberID: *barberID}: {AvgActualMinutes: 42.4, SampleCount: 5},
		{serviceID: service.ID}:                      {AvgActualMinutes: 50, SampleCount: 30},
	}}
	uc := newDurationUseCase(stats)

	minutes, smart := uc.effectiveDuration(context.Background(), business, service, barberID)
	assert.Equal(t, int64(42), minutes, "barber aggregate wins over service aggregate")
	assert.True(t, smart)
}

func TestEffectiveDuration_FallbackToServiceAggregate(t *testing.T) {
	business := &domain.Business{ID: uuid.New(), SmartDurationEnabled: true}
	service := &domain.Service{ID: uuid.New(), DurationMinutes: 30}
	barberID := ptr.Ptr(uuid.New())

	// У барбера только 4 замера - ниже порога
	stats := &fakeStatsRepo{stats: map[statKey]*domain.DurationStat{
		{serviceID: service.ID, barberID: *barberID}: {AvgActualMinutes: 42, SampleCount: 4},
		{serviceID: service.ID}:                      {AvgActualMinutes: 47.6, SampleCount: 3},
	}}
	uc := newDurationUseCase(stats)

	minutes, smart := uc.effectiveDuration(context.Background(), business, service, barberID)
	assert.Equal(t, int64(48), minutes)
	assert.True(t, smart)
}

func TestEffectiveDuration_FallbackToNominal(t *testing.T) {
	business := &domain.Business{ID: uuid.New(), SmartDurationEnabled: true}
	service := &domain.Service{ID: uuid.New(), DurationMinutes: 30}

	// Агрегат по услуге есть, но замеров меньше порога
	stats := &fakeStatsRepo{stats: map[statKey]*domain.DurationStat{
		{serviceID: service.ID}: {AvgActualMinutes: 50, SampleCount: 2},
	}}
	uc := newDurationUseCase(stats)

	minutes, smart := uc.effectiveDuration(context.Background(), business, service, nil)
	assert.Equal(t, int64(30), minutes)
	assert.False(t, smart)
}

func TestEffectiveDuration_NoBarberUsesServiceAggregate(t *testing.T) {
	business := &domain.Business{ID: uuid.New(), SmartDurationEnabled: true}
	service := &domain.Service{ID: uuid.New(), DurationMinutes: 30}

	stats := &fakeStatsRepo{stats: map[statKey]*domain.DurationStat{
		{serviceID: service.ID}: {AvgActualMinutes: 40, SampleCount: 10},
	}}
	uc := newDurationUseCase(stats)

	minutes, smart := uc.effectiveDuration(context.Background(), business, service, nil)
	assert.Equal(t, int64(40), minutes)
	assert.True(t, smart)
}

func TestEffectiveDuration_StorageErrorDegradesToNominal(t *testing.T) {
	business := &domain.Business{ID: uuid.New(), SmartDurationEnabled: true}
	service := &domain.Service{ID: uuid.New(), DurationMinutes: 30}

	stats := &fakeStatsRepo{err: errors.New("connection refused")}
	uc := newDurationUseCase(stats)

	minutes, smart := uc.effectiveDuration(context.Background(), business, service, ptr.Ptr(uuid.New()))
	assert.Equal(t, int64(30), minutes, "slot delivery must survive stats outage")
	assert.False(t, smart)
}
