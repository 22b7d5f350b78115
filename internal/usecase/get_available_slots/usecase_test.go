package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/integrations/barberdirectory"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type appointmentRepoStub struct {
	appointments []*domain.Appointment
	err          error
}

func (s *appointmentRepoStub) GetByBarberWithFilter(_ context.Context, _ domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, s.err
}

type barberClientStub struct {
	barber *domain.Barber
	err    error
}

func (s *barberClientStub) GetBarber(_ context.Context, _ int64) (*domain.Barber, error) {
	return s.barber, s.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBarber() *domain.Barber {
	return &domain.Barber{
		ID:   1,
		Name: "Алексей",
		Services: []domain.ServiceItem{
			{ID: 10, Name: "Haircut", DurationMinutes: 30, Cost: 30},
			{ID: 11, Name: "Beard Trim", DurationMinutes: 15, Cost: 20},
		},
	}
}

func defaultHours() domain.BusinessHours {
	return domain.BusinessHours{
		Open:  types.TimeString(domain.DefaultOpenTime),
		Close: types.TimeString(domain.DefaultCloseTime),
	}
}

func newTestUseCase(repo AppointmentRepository, client BarberDirectoryClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, client, defaultHours(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func scheduledAppointment(barberID int64, date time.Time, start string, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		ID:              100,
		UserID:          7,
		BarberID:        barberID,
		AppointmentDate: date,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
		Status:          domain.StatusScheduled,
	}
}

func TestExecute_EmptyDayFullLadder(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&appointmentRepoStub{}, &barberClientStub{barber: testBarber()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		ServiceIDs: []int64{10},
		Date:       date,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[len(resp.Slots)-1])
	assert.Equal(t, 30, resp.TotalDurationMinutes)
	assert.Equal(t, 30.0, resp.TotalCost)
}

func TestExecute_ExcludesBookedSlot(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	repo := &appointmentRepoStub{
		appointments: []*domain.Appointment{
			scheduledAppointment(1, date, "10:00", 30),
		},
	}
	uc := newTestUseCase(repo, &barberClientStub{barber: testBarber()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		ServiceIDs: []int64{10},
		Date:       date,
	})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
}

func TestExecute_BundleDuration(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&appointmentRepoStub{}, &barberClientStub{barber: testBarber()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		ServiceIDs: []int64{10, 11},
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.TotalDurationMinutes)
	assert.Equal(t, 50.0, resp.TotalCost)
	// Связка на 45 минут не влезает после 16:15, последний шаг лестницы 16:00
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[len(resp.Slots)-1])
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&appointmentRepoStub{}, &barberClientStub{barber: testBarber()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		ServiceIDs: []int64{10},
		Date:       date,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SameDayFiltersStartedSlots(t *testing.T) {
	// Сейчас 12:00, слоты до полудня включительно уже недоступны
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&appointmentRepoStub{}, &barberClientStub{barber: testBarber()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		ServiceIDs: []int64{10},
		Date:       date,
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("12:30"), resp.Slots[0])
}

func TestExecute_BarberNotFound(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&appointmentRepoStub{}, &barberClientStub{err: barberdirectory.ErrBarberNotFound}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BarberID:   99,
		ServiceIDs: []int64{10},
		Date:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_ServiceNotInCatalog(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&appointmentRepoStub{}, &barberClientStub{barber: testBarber()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		ServiceIDs: []int64{10, 999},
		Date:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&appointmentRepoStub{}, &barberClientStub{barber: testBarber()}, now)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero barber id", &Request{ServiceIDs: []int64{10}, Date: now}},
		{"no services", &Request{BarberID: 1, Date: now}},
		{"negative service id", &Request{BarberID: 1, ServiceIDs: []int64{-1}, Date: now}},
		{"zero date", &Request{BarberID: 1, ServiceIDs: []int64{10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
