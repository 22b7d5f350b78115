package allocator

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// AssembleInput входные данные для сборки записи
// Existing - актуальный снимок записей барбера на этот день,
// полученный вызывающей стороной непосредственно перед вызовом
type AssembleInput struct {
	UserID   int64
	Barber   *domain.Barber
	Services []domain.ServiceItem
	Date     time.Time
	Start    types.TimeString
	Existing []domain.AppointmentSlot
	Hours    domain.BusinessHours
	Now      time.Time
}

// AssembleAppointment собирает готовую к сохранению запись
//
// Проверяет предусловия (выбран барбер, услуги, дата и время), что каждая
// услуга есть в каталоге барбера, и повторно проверяет доступность слота
// по переданному снимку Existing. Если слот успели занять, возвращает
// ErrSlotUnavailable - вызывающая сторона заново запрашивает список слотов,
// автоматических повторов нет.
//
// Функция не имеет побочных эффектов: сохранение записи - зона
// ответственности хранилища.
func AssembleAppointment(in AssembleInput) (*domain.Appointment, error) {
	if in.Barber == nil {
		return nil, fmt.Errorf("%w: barber is required", ErrValidation)
	}
	if len(in.Services) == 0 {
		return nil, fmt.Errorf("%w: at least one service is required", ErrValidation)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if in.Start.IsZero() {
		return nil, fmt.Errorf("%w: start time is required", ErrValidation)
	}
	if err := in.Start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrValidation, err)
	}

	// Каждая услуга должна быть в каталоге барбера - его список
	// авторитетен по длительностям и ценам
	for _, svc := range in.Services {
		if _, ok := in.Barber.FindService(svc.ID); !ok {
			return nil, fmt.Errorf("%w: service id=%d is not offered by barber id=%d",
				ErrValidation, svc.ID, in.Barber.ID)
		}
	}

	totalDuration := domain.TotalDuration(in.Services)
	if totalDuration <= 0 {
		return nil, fmt.Errorf("%w: total duration must be positive", ErrValidation)
	}

	// Повторная проверка перед сохранением: снимок Existing мог измениться
	// с момента показа слотов пользователю
	if !IsSlotAvailable(in.Start, totalDuration, in.Existing, in.Hours) {
		return nil, ErrSlotUnavailable
	}

	return &domain.Appointment{
		UserID:          in.UserID,
		BarberID:        in.Barber.ID,
		BarberName:      in.Barber.Name,
		Services:        in.Services,
		AppointmentDate: in.Date,
		StartTime:       in.Start,
		DurationMinutes: totalDuration,
		TotalCost:       domain.TotalCost(in.Services),
		Status:          domain.StatusScheduled,
		CreatedAt:       in.Now,
		UpdatedAt:       in.Now,
	}, nil
}

// Reschedule возвращает копию записи, перенесенную на новое время
//
// Снимок existing должен быть передан БЕЗ переносимой записи - иначе она
// будет конфликтовать сама с собой. Семантика отказа та же, что у
// AssembleAppointment: занятый слот - это ErrSlotUnavailable, а не фатальная ошибка.
//
// Если newDurationMinutes не положительна, длительность записи не меняется.
func Reschedule(
	appt *domain.Appointment,
	newDate time.Time,
	newStart types.TimeString,
	newDurationMinutes int,
	existing []domain.AppointmentSlot,
	hours domain.BusinessHours,
) (*domain.Appointment, error) {
	if appt == nil {
		return nil, fmt.Errorf("%w: appointment is required", ErrValidation)
	}
	if !appt.CanBeRescheduled() {
		return nil, fmt.Errorf("%w: appointment id=%d has status %s", ErrValidation, appt.ID, appt.Status)
	}
	if newDate.IsZero() {
		return nil, fmt.Errorf("%w: new date is required", ErrValidation)
	}
	if newStart.IsZero() {
		return nil, fmt.Errorf("%w: new start time is required", ErrValidation)
	}
	if err := newStart.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid new start time: %v", ErrValidation, err)
	}

	duration := newDurationMinutes
	if duration <= 0 {
		duration = appt.DurationMinutes
	}

	if !IsSlotAvailable(newStart, duration, existing, hours) {
		return nil, ErrSlotUnavailable
	}

	updated := *appt
	updated.AppointmentDate = newDate
	updated.StartTime = newStart
	updated.DurationMinutes = duration
	return &updated, nil
}

// CheckCancellable проверяет политику отмены: отменить запись можно
// не позже, чем за window до её начала. Нарушение окна - это отказ
// политики, состояние записи при этом не меняется.
func CheckCancellable(appt *domain.Appointment, now time.Time, window time.Duration) error {
	if appt == nil {
		return fmt.Errorf("%w: appointment is required", ErrValidation)
	}
	if !appt.CanBeCancelled() {
		return fmt.Errorf("%w: appointment id=%d has status %s", ErrValidation, appt.ID, appt.Status)
	}

	start, err := appt.StartsAt()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrValidation, err)
	}

	threshold := start.Add(-window)
	if now.After(threshold) {
		return fmt.Errorf("%w: cancellation closed at %s", ErrTooLateToCancel, threshold.Format(time.RFC3339))
	}

	return nil
}
