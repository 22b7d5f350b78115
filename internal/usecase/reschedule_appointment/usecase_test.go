package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type appointmentRepoStub struct {
	byID        map[int64]*domain.Appointment
	dayAppts    []*domain.Appointment
	updatedID   int64
	updatedDate time.Time
	updatedTime types.TimeString
}

func (s *appointmentRepoStub) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if appt, ok := s.byID[id]; ok {
		copied := *appt
		return &copied, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (s *appointmentRepoStub) GetByBarberWithFilter(_ context.Context, _ domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	return s.dayAppts, nil
}

func (s *appointmentRepoStub) UpdateTime(_ context.Context, id int64, date time.Time, start types.TimeString, durationMinutes int) error {
	s.updatedID = id
	s.updatedDate = date
	s.updatedTime = start
	return nil
}

type notifyClientStub struct {
	rescheduled []*domain.Appointment
}

func (s *notifyClientStub) AppointmentRescheduled(_ context.Context, appt *domain.Appointment) error {
	s.rescheduled = append(s.rescheduled, appt)
	return nil
}

type txManagerStub struct{}

func (txManagerStub) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledAppointment(id, userID int64, date time.Time, start string) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		UserID:          userID,
		BarberID:        1,
		BarberName:      "Алексей",
		AppointmentDate: date,
		StartTime:       types.TimeString(start),
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
	}
}

func newTestUseCase(repo AppointmentRepository, notify NotifyServiceClient, now time.Time) *UseCase {
	hours := domain.BusinessHours{
		Open:  types.TimeString(domain.DefaultOpenTime),
		Close: types.TimeString(domain.DefaultCloseTime),
	}
	uc := NewUseCase(repo, notify, txManagerStub{}, hours, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_MovesAppointment(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	appt := scheduledAppointment(42, 7, date, "10:00")
	repo := &appointmentRepoStub{
		byID:     map[int64]*domain.Appointment{42: appt},
		dayAppts: []*domain.Appointment{appt},
	}
	notify := &notifyClientStub{}
	uc := newTestUseCase(repo, notify, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		AppointmentID: 42,
		Date:          date,
		StartTime:     types.TimeString("14:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, int64(42), repo.updatedID)
	assert.Equal(t, types.TimeString("14:00"), repo.updatedTime)
	assert.Len(t, notify.rescheduled, 1)
}

func TestExecute_DoesNotConflictWithItself(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	// Перенос на полшага вперед: новый интервал пересекается со старым
	// положением этой же записи, но не с чужими
	appt := scheduledAppointment(42, 7, date, "10:00")
	repo := &appointmentRepoStub{
		byID:     map[int64]*domain.Appointment{42: appt},
		dayAppts: []*domain.Appointment{appt},
	}
	uc := newTestUseCase(repo, &notifyClientStub{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		AppointmentID: 42,
		Date:          date,
		StartTime:     types.TimeString("10:15"),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:15"), resp.StartTime)
}

func TestExecute_TargetSlotTaken(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	appt := scheduledAppointment(42, 7, date, "10:00")
	other := scheduledAppointment(43, 8, date, "14:00")
	repo := &appointmentRepoStub{
		byID:     map[int64]*domain.Appointment{42: appt},
		dayAppts: []*domain.Appointment{appt, other},
	}
	uc := newTestUseCase(repo, &notifyClientStub{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		AppointmentID: 42,
		Date:          date,
		StartTime:     types.TimeString("14:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ForeignAppointmentRejected(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	appt := scheduledAppointment(42, 8, date, "10:00")
	repo := &appointmentRepoStub{
		byID:     map[int64]*domain.Appointment{42: appt},
		dayAppts: []*domain.Appointment{appt},
	}
	uc := newTestUseCase(repo, &notifyClientStub{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		AppointmentID: 42,
		Date:          date,
		StartTime:     types.TimeString("14:00"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	repo := &appointmentRepoStub{byID: map[int64]*domain.Appointment{}}
	uc := newTestUseCase(repo, &notifyClientStub{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		AppointmentID: 404,
		Date:          time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("14:00"),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_CanceledAppointmentRejected(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	appt := scheduledAppointment(42, 7, date, "10:00")
	appt.Status = domain.StatusCanceled
	repo := &appointmentRepoStub{
		byID:     map[int64]*domain.Appointment{42: appt},
		dayAppts: []*domain.Appointment{},
	}
	uc := newTestUseCase(repo, &notifyClientStub{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		AppointmentID: 42,
		Date:          date,
		StartTime:     types.TimeString("14:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
