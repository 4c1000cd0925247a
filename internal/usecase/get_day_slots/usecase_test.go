package get_day_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/ptr"
)

type fixture struct {
	uc           *UseCase
	business     *domain.Business
	service      *domain.Service
	barber       *domain.Barber
	appointments *fakeAppointmentRepo
	blocks       *fakeBlockRepo
	promos       *fakePromoRepo
	stats        *fakeStatsRepo
	clock        *fakeTimeProvider
}

func weekHours(open, close string) domain.OperatingHours {
	day := openHours(open, close)
	return domain.OperatingHours{
		Monday:    day,
		Tuesday:   day,
		Wednesday: day,
		Thursday:  day,
		Friday:    day,
		Saturday:  day,
		Sunday:    domain.DayHours{Enabled: false},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	business := &domain.Business{
		ID:                 uuid.New(),
		Slug:               "fade-factory",
		Name:               "Fade Factory",
		Timezone:           "UTC",
		OperatingHours:     weekHours("09:00", "18:00"),
		BufferMinutes:      15,
		SlotStepMinutes:    15,
		AdvanceBookingDays: 14,
		Active:             true,
	}
	service := &domain.Service{
		ID:              uuid.New(),
		BusinessID:      business.ID,
		Name:            "Classic cut",
		DurationMinutes: 30,
		Price:           1000,
		Active:          true,
	}
	barber := &domain.Barber{
		ID:          uuid.New(),
		BusinessID:  business.ID,
		DisplayName: "Alex",
		Active:      true,
	}

	f := &fixture{
		business:     business,
		service:      service,
		barber:       barber,
		appointments: &fakeAppointmentRepo{},
		blocks:       &fakeBlockRepo{},
		promos:       &fakePromoRepo{},
		stats:        &fakeStatsRepo{},
		clock:        &fakeTimeProvider{now: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)},
	}

	f.uc = &UseCase{
		businessRepo:    &fakeBusinessRepo{businesses: map[string]*domain.Business{business.Slug: business}},
		catalogRepo:     &fakeCatalogRepo{services: map[uuid.UUID]*domain.Service{service.ID: service}, barbers: map[uuid.UUID]*domain.Barber{barber.ID: barber}},
		appointmentRepo: f.appointments,
		blockRepo:       f.blocks,
		statsRepo:       f.stats,
		promoRepo:       f.promos,
		timeProvider:    f.clock,
		logger:          nopLogger{},
	}

	return f
}

func (f *fixture) request() *Request {
	return &Request{
		Slug:      f.business.Slug,
		ServiceID: f.service.ID,
		Date:      time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), // понедельник
	}
}

func TestExecute_HappyPath(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	f.appointments.appointments = []*domain.Appointment{
		{
			BusinessID:      f.business.ID,
			BarberID:        f.barber.ID,
			ScheduledAt:     day.Add(10 * time.Hour),
			DurationMinutes: 45,
			Status:          domain.StatusConfirmed,
		},
	}

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, f.business.ID, resp.BusinessID)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.Equal(t, int64(15), resp.Meta.StepMinutes)
	assert.Equal(t, int64(30), resp.Meta.DurationMinutes)
	assert.Equal(t, int64(15), resp.Meta.BufferMinutes)
	assert.False(t, resp.Meta.SmartDuration)

	require.Len(t, resp.Slots, 36)

	// Запись занимает 10:00-10:45; окно кандидата 30+15 минут
	assert.False(t, slotAt(resp.Slots, day.Add(10*time.Hour)).Available)
	assert.False(t, slotAt(resp.Slots, day.Add(10*time.Hour+30*time.Minute)).Available)
	assert.True(t, slotAt(resp.Slots, day.Add(10*time.Hour+45*time.Minute)).Available, "slot at the appointment end is bookable")
	assert.True(t, slotAt(resp.Slots, day.Add(11*time.Hour)).Available)

	// 09:15 + 45 минут окна заканчивается ровно к началу записи
	assert.True(t, slotAt(resp.Slots, day.Add(9*time.Hour+15*time.Minute)).Available)
}

// Буфер входит в окно новой записи и не раздувает чужие интервалы:
// слот, начинающийся ровно в конце существующей записи, остается доступным.
func TestExecute_SlotAtAppointmentEndStaysBookable(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	f.appointments.appointments = []*domain.Appointment{
		{
			BusinessID:      f.business.ID,
			BarberID:        f.barber.ID,
			ScheduledAt:     day.Add(10 * time.Hour),
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		},
	}

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.False(t, slotAt(resp.Slots, day.Add(10*time.Hour)).Available)
	assert.False(t, slotAt(resp.Slots, day.Add(10*time.Hour+15*time.Minute)).Available)
	assert.True(t, slotAt(resp.Slots, day.Add(10*time.Hour+30*time.Minute)).Available, "back-to-back booking after an appointment is allowed")

	// Окно 09:45 + 45 минут залезает на запись, 09:15 заканчивается к её началу
	assert.False(t, slotAt(resp.Slots, day.Add(9*time.Hour+45*time.Minute)).Available)
	assert.True(t, slotAt(resp.Slots, day.Add(9*time.Hour+15*time.Minute)).Available)
}

func TestExecute_MalformedBlockIsInternalError(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	f.blocks.blocks = []*domain.Block{
		{
			ID:         uuid.New(),
			BusinessID: f.business.ID,
			StartTime:  day.Add(14 * time.Hour),
			EndTime:    day.Add(13 * time.Hour),
		},
	}

	_, err := f.uc.Execute(context.Background(), f.request())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorContains(t, err, "malformed")
}

func TestExecute_BusinessNotFoundOrInactive(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.Slug = "no-such-shop"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	f.business.Active = false
	_, err = f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrBusinessNotFound, "inactive business must look like a missing one")
}

func TestExecute_ServiceErrors(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.ServiceID = uuid.New()
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	f.service.Active = false
	_, err = f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_BarberErrors(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.BarberID = ptr.Ptr(uuid.New())
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarberNotFound)

	f.barber.Active = false
	req = f.request()
	req.BarberID = ptr.Ptr(f.barber.ID)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_DateValidation(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.Date = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = f.request()
	req.Date = time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_ClosedDayReturnsEmptyList(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) // воскресенье

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots, "closed day is an empty list, not an error")
}

func TestExecute_MisconfiguredHoursReturnEmptyList(t *testing.T) {
	f := newFixture(t)
	f.business.OperatingHours.Monday = openHours("18:00", "09:00")

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	f := newFixture(t)
	f.business.Timezone = "Mars/Olympus_Mons"

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_SmartDurationUsesDenseGrid(t *testing.T) {
	f := newFixture(t)
	f.business.SmartDurationEnabled = true
	f.stats.stats = map[statKey]*domain.DurationStat{
		{serviceID: f.service.ID}: {AvgActualMinutes: 40, SampleCount: 10},
	}

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.Meta.StepMinutes)
	assert.Equal(t, int64(40), resp.Meta.DurationMinutes)
	assert.True(t, resp.Meta.SmartDuration)

	// 09:00..17:55 с шагом 5 минут
	assert.Len(t, resp.Slots, 108)
}

func TestExecute_PromoAttachedOnlyToAvailableSlots(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	f.appointments.appointments = []*domain.Appointment{
		{
			BusinessID:      f.business.ID,
			BarberID:        f.barber.ID,
			ScheduledAt:     day.Add(10 * time.Hour),
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		},
	}
	f.promos.rules = []*domain.PromoRule{
		rule("Morning -10%", []int64{1}, "09:00", "12:00"),
	}

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	free := slotAt(resp.Slots, day.Add(9*time.Hour))
	require.NotNil(t, free.Discount)
	assert.Equal(t, "Morning -10%", free.Discount.Label)

	taken := slotAt(resp.Slots, day.Add(10*time.Hour))
	assert.False(t, taken.Available)
	assert.Nil(t, taken.Discount)

	afternoon := slotAt(resp.Slots, day.Add(14*time.Hour))
	assert.True(t, afternoon.Available)
	assert.Nil(t, afternoon.Discount)
}

// Перебор случайных расписаний: ни один доступный слот не должен
// пересекаться с блокирующей записью.
func TestExecute_NoAvailableSlotOverlapsBusyTime(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	starts := []int{555, 600, 660, 735, 900, 990} // минуты от полуночи
	appointments := make([]*domain.Appointment, 0, len(starts))
	for _, m := range starts {
		appointments = append(appointments, &domain.Appointment{
			BusinessID:      f.business.ID,
			BarberID:        f.barber.ID,
			ScheduledAt:     day.Add(time.Duration(m) * time.Minute),
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
		})
	}
	f.appointments.appointments = appointments

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	window := time.Duration(resp.Meta.DurationMinutes+resp.Meta.BufferMinutes) * time.Minute

	for _, slot := range resp.Slots {
		if !slot.Available {
			continue
		}
		slotInterval := domain.Interval{Start: slot.StartAt, End: slot.StartAt.Add(window)}
		for _, a := range appointments {
			assert.False(t, slotInterval.Overlaps(a.Interval()),
				"available slot %s overlaps appointment at %s", slot.StartAt, a.ScheduledAt)
		}
	}
}

func TestExecute_InputValidation(t *testing.T) {
	f := newFixture(t)

	req := f.request()
	req.Slug = ""
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = f.request()
	req.ServiceID = uuid.Nil
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = f.request()
	req.Date = time.Time{}
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
