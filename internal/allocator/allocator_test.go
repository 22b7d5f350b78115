package allocator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var defaultHours = domain.BusinessHours{
	Open:  types.TimeString(domain.DefaultOpenTime),
	Close: types.TimeString(domain.DefaultCloseTime),
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 11, 20, 0, 0, 0, 0, time.Local)
}

func slot(t *testing.T, start string, durationMinutes int) domain.AppointmentSlot {
	t.Helper()
	s, err := types.NewTimeStringFromString(start)
	require.NoError(t, err)
	end, err := s.AddMinutes(durationMinutes)
	require.NoError(t, err)
	return domain.AppointmentSlot{Start: s, End: end}
}

func testBarber() *domain.Barber {
	return &domain.Barber{
		ID:              7,
		Name:            "Иван",
		ExperienceYears: 5,
		Services: []domain.ServiceItem{
			{ID: 1, Name: "Haircut", DurationMinutes: 30, Cost: 30},
			{ID: 2, Name: "Beard Trim", DurationMinutes: 15, Cost: 20},
			{ID: 3, Name: "Shave", DurationMinutes: 20, Cost: 15},
		},
	}
}

func TestCandidateSlots_EmptyDay(t *testing.T) {
	slots, err := CandidateSlots(testDate(t), defaultHours, nil, 30)
	require.NoError(t, err)

	// 09:00 .. 16:30 с шагом 30 минут
	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])
}

func TestCandidateSlots_ExcludesOverlapping(t *testing.T) {
	// У барбера есть запись 10:00-10:30 (стрижка, 30 минут)
	existing := []domain.AppointmentSlot{slot(t, "10:00", 30)}

	slots, err := CandidateSlots(testDate(t), defaultHours, existing, 30)
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.Contains(t, slots, types.TimeString("09:30"))
	assert.Contains(t, slots, types.TimeString("11:00"))
}

func TestCandidateSlots_LongBundleRespectsClosing(t *testing.T) {
	// 90 минут: последний допустимый старт 15:30 (конец 17:00)
	slots, err := CandidateSlots(testDate(t), defaultHours, nil, 90)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("15:30"), slots[len(slots)-1])

	// P2: каждый кандидат целиком лежит в рабочих часах
	for _, s := range slots {
		end, err := s.AddMinutes(90)
		require.NoError(t, err)
		assert.False(t, s.IsBefore(defaultHours.Open), "slot %s starts before opening", s)
		assert.False(t, end.IsAfter(defaultHours.Close), "slot %s ends after closing", s)
	}
}

func TestCandidateSlots_ZeroInputs(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		duration int
	}{
		{name: "zero date", date: time.Time{}, duration: 30},
		{name: "zero duration", date: time.Date(2025, 11, 20, 0, 0, 0, 0, time.Local), duration: 0},
		{name: "negative duration", date: time.Date(2025, 11, 20, 0, 0, 0, 0, time.Local), duration: -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := CandidateSlots(tt.date, defaultHours, nil, tt.duration)
			require.NoError(t, err)
			assert.Empty(t, slots)
		})
	}
}

func TestCandidateSlots_Idempotent(t *testing.T) {
	// P4: одинаковые входы - одинаковый результат, скрытого состояния нет
	existing := []domain.AppointmentSlot{slot(t, "11:00", 45), slot(t, "14:30", 30)}

	first, err := CandidateSlots(testDate(t), defaultHours, existing, 45)
	require.NoError(t, err)
	second, err := CandidateSlots(testDate(t), defaultHours, existing, 45)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIsSlotAvailable_Boundaries(t *testing.T) {
	existing := []domain.AppointmentSlot{slot(t, "12:00", 60)}

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{name: "touching before is free", start: "11:30", duration: 30, want: true},
		{name: "touching after is free", start: "13:00", duration: 30, want: true},
		{name: "overlap at start", start: "11:45", duration: 30, want: false},
		{name: "overlap inside", start: "12:15", duration: 30, want: false},
		{name: "overlap covering", start: "11:30", duration: 120, want: false},
		{name: "before opening", start: "08:30", duration: 30, want: false},
		{name: "ends after closing", start: "16:45", duration: 30, want: false},
		{name: "fills last slot exactly", start: "16:30", duration: 30, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := types.NewTimeStringFromString(tt.start)
			require.NoError(t, err)
			got := IsSlotAvailable(start, tt.duration, existing, defaultHours)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssembleAppointment_AggregatesBundle(t *testing.T) {
	// Haircut(30 мин, $30) + Beard Trim(15 мин, $20) на 09:00
	barber := testBarber()
	now := time.Date(2025, 11, 19, 12, 0, 0, 0, time.Local)

	appt, err := AssembleAppointment(AssembleInput{
		UserID:   42,
		Barber:   barber,
		Services: barber.Services[:2],
		Date:     testDate(t),
		Start:    types.TimeString("09:00"),
		Hours:    defaultHours,
		Now:      now,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusScheduled, appt.Status)
	assert.Equal(t, int64(7), appt.BarberID)
	assert.Equal(t, "Иван", appt.BarberName)
	assert.Equal(t, 45, appt.DurationMinutes)
	assert.Equal(t, 50.0, appt.TotalCost)

	end, err := appt.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:45"), end)
}

func TestAssembleAppointment_ValidationFailures(t *testing.T) {
	barber := testBarber()
	date := time.Date(2025, 11, 20, 0, 0, 0, 0, time.Local)
	start := types.TimeString("10:00")

	tests := []struct {
		name string
		in   AssembleInput
	}{
		{name: "no barber", in: AssembleInput{UserID: 1, Services: barber.Services[:1], Date: date, Start: start, Hours: defaultHours}},
		{name: "no services", in: AssembleInput{UserID: 1, Barber: barber, Date: date, Start: start, Hours: defaultHours}},
		{name: "no date", in: AssembleInput{UserID: 1, Barber: barber, Services: barber.Services[:1], Start: start, Hours: defaultHours}},
		{name: "no start", in: AssembleInput{UserID: 1, Barber: barber, Services: barber.Services[:1], Date: date, Hours: defaultHours}},
		{
			name: "foreign service",
			in: AssembleInput{
				UserID: 1, Barber: barber, Date: date, Start: start, Hours: defaultHours,
				Services: []domain.ServiceItem{{ID: 99, Name: "Massage", DurationMinutes: 60, Cost: 100}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AssembleAppointment(tt.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAssembleAppointment_ConcurrentBookingConflict(t *testing.T) {
	// Два клиента претендуют на один слот: первый успевает, второй
	// перепроверяется по обновленному снимку и получает отказ
	barber := testBarber()
	date := testDate(t)
	now := time.Date(2025, 11, 19, 12, 0, 0, 0, time.Local)

	first, err := AssembleAppointment(AssembleInput{
		UserID:   1,
		Barber:   barber,
		Services: barber.Services[:1],
		Date:     date,
		Start:    types.TimeString("10:00"),
		Hours:    defaultHours,
		Now:      now,
	})
	require.NoError(t, err)

	firstSlot, err := domain.SlotFromAppointment(first)
	require.NoError(t, err)

	_, err = AssembleAppointment(AssembleInput{
		UserID:   2,
		Barber:   barber,
		Services: barber.Services[:1],
		Date:     date,
		Start:    types.TimeString("10:00"),
		Existing: []domain.AppointmentSlot{firstSlot},
		Hours:    defaultHours,
		Now:      now,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestAssembleAppointment_NoOverlapAfterSequentialBookings(t *testing.T) {
	// P1: после серии успешных бронирований ни одна пара интервалов не пересекается
	barber := testBarber()
	date := testDate(t)
	now := time.Date(2025, 11, 19, 12, 0, 0, 0, time.Local)

	existing := make([]domain.AppointmentSlot, 0)
	starts := []string{"09:00", "10:00", "09:30", "10:15", "11:00", "09:45"}
	booked := 0

	for _, s := range starts {
		appt, err := AssembleAppointment(AssembleInput{
			UserID:   int64(booked + 1),
			Barber:   barber,
			Services: barber.Services[1:2], // 15 минут
			Date:     date,
			Start:    types.TimeString(s),
			Existing: existing,
			Hours:    defaultHours,
			Now:      now,
		})
		if err != nil {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
			continue
		}
		apptSlot, err := domain.SlotFromAppointment(appt)
		require.NoError(t, err)
		existing = append(existing, apptSlot)
		booked++
	}

	require.Greater(t, booked, 1)
	for i := range existing {
		for j := i + 1; j < len(existing); j++ {
			assert.False(t, existing[i].Overlaps(existing[j]),
				"slots %v and %v overlap", existing[i], existing[j])
		}
	}
}

func TestCheckCancellable(t *testing.T) {
	window := time.Duration(domain.DefaultCancellationWindowMinutes) * time.Minute
	now := time.Date(2025, 11, 20, 10, 0, 0, 0, time.Local)

	makeAppt := func(startsIn time.Duration, status domain.AppointmentStatus) *domain.Appointment {
		start := now.Add(startsIn)
		return &domain.Appointment{
			ID:              1,
			AppointmentDate: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
			StartTime:       types.NewTimeString(start),
			DurationMinutes: 30,
			Status:          status,
		}
	}

	t.Run("starts in 4 hours - allowed", func(t *testing.T) {
		err := CheckCancellable(makeAppt(4*time.Hour, domain.StatusScheduled), now, window)
		assert.NoError(t, err)
	})

	t.Run("starts in 2 hours - too late", func(t *testing.T) {
		err := CheckCancellable(makeAppt(2*time.Hour, domain.StatusScheduled), now, window)
		assert.ErrorIs(t, err, ErrTooLateToCancel)
	})

	t.Run("exactly at threshold - allowed", func(t *testing.T) {
		// now == start - window: строгое "позже" еще не наступило
		err := CheckCancellable(makeAppt(window, domain.StatusScheduled), now, window)
		assert.NoError(t, err)
	})

	t.Run("already canceled", func(t *testing.T) {
		err := CheckCancellable(makeAppt(4*time.Hour, domain.StatusCanceled), now, window)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("already completed", func(t *testing.T) {
		err := CheckCancellable(makeAppt(4*time.Hour, domain.StatusCompleted), now, window)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestReschedule(t *testing.T) {
	date := testDate(t)
	appt := &domain.Appointment{
		ID:              5,
		UserID:          42,
		BarberID:        7,
		AppointmentDate: date,
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
	}

	t.Run("moves to free slot", func(t *testing.T) {
		existing := []domain.AppointmentSlot{slot(t, "13:00", 60)}

		updated, err := Reschedule(appt, date, types.TimeString("14:00"), 0, existing, defaultHours)
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("14:00"), updated.StartTime)
		assert.Equal(t, 30, updated.DurationMinutes)
		// Исходная запись не изменилась
		assert.Equal(t, types.TimeString("10:00"), appt.StartTime)
	})

	t.Run("target slot taken", func(t *testing.T) {
		existing := []domain.AppointmentSlot{slot(t, "14:00", 45)}

		_, err := Reschedule(appt, date, types.TimeString("14:00"), 0, existing, defaultHours)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("new duration applied", func(t *testing.T) {
		updated, err := Reschedule(appt, date, types.TimeString("15:00"), 45, nil, defaultHours)
		require.NoError(t, err)
		assert.Equal(t, 45, updated.DurationMinutes)
	})

	t.Run("canceled appointment cannot move", func(t *testing.T) {
		canceled := *appt
		canceled.Status = domain.StatusCanceled

		_, err := Reschedule(&canceled, date, types.TimeString("14:00"), 0, nil, defaultHours)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("outside business hours", func(t *testing.T) {
		_, err := Reschedule(appt, date, types.TimeString("16:45"), 0, nil, defaultHours)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})
}
