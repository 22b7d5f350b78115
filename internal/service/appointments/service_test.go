package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type appointmentRepoStub struct {
	byID        map[int64]*domain.Appointment
	cancelledID int64
	statusID    int64
	newStatus   domain.AppointmentStatus
}

func (s *appointmentRepoStub) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if appt, ok := s.byID[id]; ok {
		copied := *appt
		return &copied, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (s *appointmentRepoStub) GetByUserID(_ context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range s.byID {
		if appt.UserID != userID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (s *appointmentRepoStub) GetByBarberWithFilter(_ context.Context, filter domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range s.byID {
		if appt.BarberID != filter.BarberID {
			continue
		}
		if !filter.IncludeInactive && appt.Status == domain.StatusCanceled {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (s *appointmentRepoStub) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	s.statusID = id
	s.newStatus = status
	return nil
}

func (s *appointmentRepoStub) Cancel(_ context.Context, id int64) error {
	s.cancelledID = id
	return nil
}

type notifyClientStub struct {
	cancelled []*domain.Appointment
}

func (s *notifyClientStub) AppointmentCancelled(_ context.Context, appt *domain.Appointment) error {
	s.cancelled = append(s.cancelled, appt)
	return nil
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

func newTestService(repo *appointmentRepoStub, notify *notifyClientStub, now time.Time) *Service {
	window := time.Duration(domain.DefaultCancellationWindowMinutes) * time.Minute
	svc := NewService(repo, notify, window, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestCancel_WithEnoughNotice(t *testing.T) {
	// Запись в 14:00, сейчас 10:00 - до начала 4 часа, окно отмены 3 часа
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	repo := &appointmentRepoStub{byID: map[int64]*domain.Appointment{
		42: scheduledAppointment(42, 7, date, "14:00"),
	}}
	notify := &notifyClientStub{}
	svc := newTestService(repo, notify, now)

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.cancelledID)
	assert.Len(t, notify.cancelled, 1)
}

func TestCancel_TooLate(t *testing.T) {
	// Запись в 14:00, сейчас 12:00 - до начала 2 часа, меньше окна отмены
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	repo := &appointmentRepoStub{byID: map[int64]*domain.Appointment{
		42: scheduledAppointment(42, 7, date, "14:00"),
	}}
	notify := &notifyClientStub{}
	svc := newTestService(repo, notify, now)

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrTooLateToCancel)

	// Запись осталась нетронутой
	assert.Zero(t, repo.cancelledID)
	assert.Empty(t, notify.cancelled)
}

func TestCancel_ForeignAppointment(t *testing.T) {
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	repo := &appointmentRepoStub{byID: map[int64]*domain.Appointment{
		42: scheduledAppointment(42, 8, date, "14:00"),
	}}
	svc := newTestService(repo, &notifyClientStub{}, now)

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCanceled(t *testing.T) {
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	appt := scheduledAppointment(42, 7, date, "14:00")
	appt.Status = domain.StatusCanceled
	repo := &appointmentRepoStub{byID: map[int64]*domain.Appointment{42: appt}}
	svc := newTestService(repo, &notifyClientStub{}, now)

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	repo := &appointmentRepoStub{byID: map[int64]*domain.Appointment{}}
	svc := newTestService(repo, &notifyClientStub{}, now)

	err := svc.Cancel(context.Background(), 404, &models.CancelAppointmentRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_OwnerOnly(t *testing.T) {
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)

	repo := &appointmentRepoStub{byID: map[int64]*domain.Appointment{
		42: scheduledAppointment(42, 7, date, "14:00"),
	}}
	svc := newTestService(repo, &notifyClientStub{}, now)

	resp, err := svc.GetByID(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "14:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 42, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserAppointments_InvalidStatus(t *testing.T) {
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&appointmentRepoStub{byID: map[int64]*domain.Appointment{}}, &notifyClientStub{}, now)

	badStatus := "pending"
	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 7,
		Status: &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComplete_MarksCompleted(t *testing.T) {
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 3, 15, 0, 0, 0, time.UTC)

	repo := &appointmentRepoStub{byID: map[int64]*domain.Appointment{
		42: scheduledAppointment(42, 7, date, "14:00"),
	}}
	svc := newTestService(repo, &notifyClientStub{}, now)

	err := svc.Complete(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.statusID)
	assert.Equal(t, domain.StatusCompleted, repo.newStatus)
}
