package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/allocator"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	barberClient "github.com/m04kA/SMC-BarberService/internal/integrations/barberdirectory"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

// UseCase use case для создания записи к барберу
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberClient    BarberDirectoryClient
	txManager       TransactionManager
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberClient BarberDirectoryClient,
	txManager TransactionManager,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberClient:    barberClient,
		txManager:       txManager,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, barber=%d, services=%v, date=%s, time=%s",
		req.UserID, req.BarberID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты и времени начала
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}
	if err := validateStartTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: start time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем барбера со списком его услуг
	barber, err := uc.barberClient.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberClient.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 5. Находим выбранные услуги в каталоге барбера
	services, err := resolveServices(barber, req.ServiceIDs)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активные записи барбера на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BarberAppointmentsFilter{
			BarberID:        req.BarberID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false, // Отмененные записи слоты не занимают
		}

		appointments, err := uc.appointmentRepo.GetByBarberWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		existing, err := buildExistingSlots(appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to build existing slots: %v", err)
			return fmt.Errorf("%w: failed to build existing slots: %v", ErrInternal, err)
		}

		// 6.2. Повторно проверяем доступность слота и собираем запись.
		// Между показом слотов пользователю и подтверждением слот могли занять.
		appt, err := allocator.AssembleAppointment(allocator.AssembleInput{
			UserID:   req.UserID,
			Barber:   barber,
			Services: services,
			Date:     req.Date,
			Start:    req.StartTime,
			Existing: existing,
			Hours:    uc.hours,
			Now:      now,
		})
		if err != nil {
			if errors.Is(err, allocator.ErrSlotUnavailable) {
				uc.logger.Warn("CreateAppointment: slot %s is already taken for barber=%d, date=%s",
					req.StartTime, req.BarberID, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			if errors.Is(err, allocator.ErrValidation) {
				uc.logger.Warn("CreateAppointment: assemble validation failed: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateAppointment: failed to assemble appointment: %v", err)
			return fmt.Errorf("%w: failed to assemble appointment: %v", ErrInternal, err)
		}

		// 6.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

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
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
