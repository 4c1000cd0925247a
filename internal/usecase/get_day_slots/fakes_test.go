package get_day_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	businessRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/catalog"
	statsRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/durationstats"
)

type fakeBusinessRepo struct {
	businesses map[string]*domain.Business
}

func (f *fakeBusinessRepo) GetBySlug(_ context.Context, slug string) (*domain.Business, error) {
	if b, ok := f.businesses[slug]; ok {
		return b, nil
	}
	return nil, businessRepo.ErrBusinessNotFound
}

type fakeCatalogRepo struct {
	services map[uuid.UUID]*domain.Service
	barbers  map[uuid.UUID]*domain.Barber
}

func (f *fakeCatalogRepo) GetService(_ context.Context, _, serviceID uuid.UUID) (*domain.Service, error) {
	if s, ok := f.services[serviceID]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeCatalogRepo) GetBarber(_ context.Context, _, barberID uuid.UUID) (*domain.Barber, error) {
	if b, ok := f.barbers[barberID]; ok {
		return b, nil
	}
	return nil, catalogRepo.ErrBarberNotFound
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetForRange(_ context.Context, _ uuid.UUID, barberID *uuid.UUID, from, to time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if barberID != nil && a.BarberID != *barberID {
			continue
		}
		if !a.BlocksTime() {
			continue
		}
		interval := a.Interval()
		if interval.Start.Before(to) && interval.End.After(from) {
			result = append(result, a)
		}
	}
	return result, nil
}

type fakeBlockRepo struct {
	blocks []*domain.Block
}

func (f *fakeBlockRepo) GetOverlapping(_ context.Context, _ uuid.UUID, barberID *uuid.UUID, from, to time.Time) ([]*domain.Block, error) {
	result := make([]*domain.Block, 0)
	for _, b := range f.blocks {
		if barberID != nil && b.BarberID != *barberID {
			continue
		}
		if b.StartTime.Before(to) && b.EndTime.After(from) {
			result = append(result, b)
		}
	}
	return result, nil
}

type statKey struct {
	serviceID uuid.UUID
	barberID  uuid.UUID // uuid.Nil означает агрегат по услуге
}

type fakeStatsRepo struct {
	stats map[statKey]*domain.DurationStat
	err   error
}

func (f *fakeStatsRepo) Get(_ context.Context, _, serviceID uuid.UUID, barberID *uuid.UUID) (*domain.DurationStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := statKey{serviceID: serviceID}
	if barberID != nil {
		key.barberID = *barberID
	}
	if s, ok := f.stats[key]; ok {
		return s, nil
	}
	return nil, statsRepo.ErrStatNotFound
}

type fakePromoRepo struct {
	rules []*domain.PromoRule
}

func (f *fakePromoRepo) ListByBusiness(_ context.Context, _ uuid.UUID) ([]*domain.PromoRule, error) {
	return f.rules, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
