package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// buildExistingSlots преобразует активные записи барбера в интервалы для проверки пересечений
func buildExistingSlots(appointments []*domain.Appointment) ([]domain.AppointmentSlot, error) {
	slots := make([]domain.AppointmentSlot, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.IsScheduled() {
			continue
		}
		slot, err := domain.SlotFromAppointment(appt)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня (сравнение по дням)
func isDateInPast(date time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(today)
}

// isSameDay проверяет, что две даты приходятся на один календарный день
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// filterPastStarts отбрасывает слоты, которые уже начались.
// Применяется только для запросов на сегодняшний день.
func filterPastStarts(slots []types.TimeString, now time.Time) []types.TimeString {
	cutoff := types.NewTimeString(now)
	filtered := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if s.IsAfter(cutoff) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
