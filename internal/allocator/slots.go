package allocator

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// CandidateSlots возвращает времена начала, на которые можно записаться
// к барберу в указанный день с услугами суммарной длительностью requestedDurationMinutes.
//
// Лестница кандидатов строится от открытия с фиксированным шагом domain.DefaultSlotStepMinutes,
// последний допустимый кандидат - тот, чей конец не выходит за время закрытия.
// Кандидат отбрасывается, если его интервал пересекается с существующей записью.
//
// Функция чистая: пересчитывает результат с нуля на каждый вызов и не хранит
// состояния между вызовами. Если дата не задана или длительность не положительна,
// возвращает пустой список без ошибки.
func CandidateSlots(
	date time.Time,
	hours domain.BusinessHours,
	existing []domain.AppointmentSlot,
	requestedDurationMinutes int,
) ([]types.TimeString, error) {
	if date.IsZero() || requestedDurationMinutes <= 0 {
		return []types.TimeString{}, nil
	}

	candidates := make([]types.TimeString, 0)
	current := hours.Open

	for current.IsBefore(hours.Close) {
		end, err := current.AddMinutes(requestedDurationMinutes)
		if err != nil {
			return nil, err
		}

		// Конец вышел за закрытие - все последующие кандидаты тем более не влезут
		if end.IsAfter(hours.Close) {
			break
		}

		if IsSlotAvailable(current, requestedDurationMinutes, existing, hours) {
			candidates = append(candidates, current)
		}

		current, err = current.AddMinutes(domain.DefaultSlotStepMinutes)
		if err != nil {
			return nil, err
		}
	}

	return candidates, nil
}

// IsSlotAvailable проверяет один кандидат: интервал [start, start+duration)
// должен лежать в рабочих часах и не пересекаться ни с одной существующей записью.
//
// Используется и при построении лестницы, и для повторной проверки перед
// сохранением записи (между показом слотов и подтверждением могло пройти время).
func IsSlotAvailable(
	start types.TimeString,
	durationMinutes int,
	existing []domain.AppointmentSlot,
	hours domain.BusinessHours,
) bool {
	if start.IsZero() || durationMinutes <= 0 {
		return false
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	proposed := domain.AppointmentSlot{Start: start, End: end}

	if !hours.Contains(proposed) {
		return false
	}

	// Пересечение проверяем по полуоткрытым интервалам:
	// записи, граничащие по времени, не конфликтуют
	for _, slot := range existing {
		if proposed.Overlaps(slot) {
			return false
		}
	}

	return true
}
