package get_booking_dates

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	businessRepo "github.com/m04kA/BRB-AvailabilityService/internal/infra/storage/business"
	"github.com/m04kA/BRB-AvailabilityService/pkg/ptr"
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

func newBusiness() *domain.Business {
	day := domain.DayHours{Open: ptr.Ptr("09:00"), Close: ptr.Ptr("18:00"), Enabled: true}
	return &domain.Business{
		ID:       uuid.New(),
		Slug:     "fade-factory",
		Timezone: "UTC",
		OperatingHours: domain.OperatingHours{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
			Saturday:  domain.DayHours{Enabled: false},
			Sunday:    domain.DayHours{Enabled: false},
		},
		AdvanceBookingDays: 7,
		Active:             true,
	}
}

func newUseCase(business *domain.Business, now time.Time) *UseCase {
	return &UseCase{
		businessRepo: &fakeBusinessRepo{businesses: map[string]*domain.Business{business.Slug: business}},
		timeProvider: &fakeTimeProvider{now: now},
		logger:       nopLogger{},
	}
}

func TestExecute_SkipsClosedWeekdays(t *testing.T) {
	business := newBusiness()
	// Понедельник 2026-03-16, 10:00
	uc := newUseCase(business, time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Slug: business.Slug})
	require.NoError(t, err)

	// Окно пн 16 .. пн 23: рабочие пн-пт 16..20 и пн 23, суббота и воскресенье выпадают
	require.Len(t, resp.Dates, 6)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), resp.Dates[0])
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), resp.Dates[4])
	assert.Equal(t, time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC), resp.Dates[5])

	for i := 1; i < len(resp.Dates); i++ {
		assert.True(t, resp.Dates[i-1].Before(resp.Dates[i]), "dates must be ascending")
	}
}

func TestExecute_TodayExcludedAfterClosing(t *testing.T) {
	business := newBusiness()
	// Понедельник 19:00 - уже закрыто
	uc := newUseCase(business, time.Date(2026, 3, 16, 19, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Slug: business.Slug})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Dates)
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), resp.Dates[0], "today must be skipped after closing")
}

func TestExecute_MisconfiguredDaySkipped(t *testing.T) {
	business := newBusiness()
	business.OperatingHours.Tuesday = domain.DayHours{Open: ptr.Ptr("18:00"), Close: ptr.Ptr("09:00"), Enabled: true}
	uc := newUseCase(business, time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Slug: business.Slug})
	require.NoError(t, err)

	for _, d := range resp.Dates {
		assert.NotEqual(t, time.Tuesday, d.Weekday(), "inverted hours make the day unbookable")
	}
}

func TestExecute_DaysLimit(t *testing.T) {
	business := newBusiness()
	uc := newUseCase(business, time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC))

	// Ограничение уже окна бизнеса: пн 16 .. ср 18
	resp, err := uc.Execute(context.Background(), &Request{Slug: business.Slug, Days: ptr.Ptr(int64(2))})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 3)
	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC), resp.Dates[2])

	// Запрос не расширяет окно бизнеса
	resp, err = uc.Execute(context.Background(), &Request{Slug: business.Slug, Days: ptr.Ptr(int64(30))})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC), resp.Dates[len(resp.Dates)-1])

	_, err = uc.Execute(context.Background(), &Request{Slug: business.Slug, Days: ptr.Ptr(int64(0))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BusinessNotFoundOrInactive(t *testing.T) {
	business := newBusiness()
	uc := newUseCase(business, time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{Slug: "ghost"})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	business.Active = false
	_, err = uc.Execute(context.Background(), &Request{Slug: business.Slug})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
