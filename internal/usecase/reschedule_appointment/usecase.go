package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/allocator"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

// UseCase use case для переноса записи на другое время
type UseCase struct {
	appointmentRepo AppointmentRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: user=%d, appointment=%d, date=%s, time=%s",
		req.UserID, req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация новой даты и времени начала
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
		return nil, err
	}
	if err := validateStartTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: start time validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем переносимую запись
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 4.2. Переносить запись может только её владелец
		if appt.UserID != req.UserID {
			uc.logger.Warn("RescheduleAppointment: user id=%d is not the owner of appointment id=%d",
				req.UserID, req.AppointmentID)
			return ErrAccessDenied
		}

		if !appt.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d has status %s", appt.ID, appt.Status)
			return ErrInvalidStatus
		}

		// 4.3. Получаем активные записи барбера на новую дату с блокировкой (FOR UPDATE)
		filter := domain.BarberAppointmentsFilter{
			BarberID:        appt.BarberID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByBarberWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// Переносимая запись исключается из снимка
		existing, err := buildExistingSlots(appointments, appt.ID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to build existing slots: %v", err)
			return fmt.Errorf("%w: failed to build existing slots: %v", ErrInternal, err)
		}

		// 4.4. Проверяем доступность нового слота, длительность не меняется
		updated, err := allocator.Reschedule(appt, req.Date, req.StartTime, 0, existing, uc.hours)
		if err != nil {
			if errors.Is(err, allocator.ErrSlotUnavailable) {
				uc.logger.Warn("RescheduleAppointment: slot %s is already taken for barber=%d, date=%s",
					req.StartTime, appt.BarberID, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			if errors.Is(err, allocator.ErrValidation) {
				uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("RescheduleAppointment: failed to reschedule: %v", err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		// 4.5. Сохраняем новое время
		if err := uc.appointmentRepo.UpdateTime(txCtx, updated.ID, updated.AppointmentDate,
			updated.StartTime, updated.DurationMinutes); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%d: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Уведомляем пользователя о переносе. Ошибка уведомления запись не откатывает.
	if err := uc.notifyClient.AppointmentRescheduled(ctx, result); err != nil {
		uc.logger.Warn("RescheduleAppointment: failed to notify about appointment id=%d: %v", result.ID, err)
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d to %s %s",
		result.ID, result.AppointmentDate.Format(domain.DateFormat), result.StartTime)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		BarberID:        result.BarberID,
		BarberName:      result.BarberName,
		Services:        result.Services,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		TotalCost:       result.TotalCost,
		Status:          string(result.Status),
	}, nil
}
