package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/allocator"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	barberClient "github.com/m04kA/SMC-BarberService/internal/integrations/barberdirectory"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для получения доступных слотов записи к барберу
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberClient    BarberDirectoryClient
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberClient BarberDirectoryClient,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberClient:    barberClient,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, services=%v, date=%s",
		req.BarberID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем барбера со списком его услуг
	barber, err := uc.barberClient.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberClient.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Находим выбранные услуги в каталоге барбера
	services, err := resolveServices(barber, req.ServiceIDs)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	totalDuration := domain.TotalDuration(services)
	totalCost := domain.TotalCost(services)

	// 5. Для прошедшей даты записаться нельзя - возвращаем пустой список
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:                 req.Date,
			BarberID:             req.BarberID,
			TotalDurationMinutes: totalDuration,
			TotalCost:            totalCost,
			Slots:                []types.TimeString{},
		}, nil
	}

	// 6. Получаем активные записи барбера на эту дату
	filter := domain.BarberAppointmentsFilter{
		BarberID:        req.BarberID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false, // Отмененные записи слоты не занимают
	}

	appointments, err := uc.appointmentRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	existing, err := buildExistingSlots(appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build existing slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build existing slots: %v", ErrInternal, err)
	}

	// 7. Строим лестницу кандидатов
	slots, err := allocator.CandidateSlots(req.Date, uc.hours, existing, totalDuration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build candidate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build candidate slots: %v", ErrInternal, err)
	}

	// 8. На сегодня отбрасываем уже начавшиеся слоты
	if isSameDay(req.Date, now) {
		slots = filterPastStarts(slots, now)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for barber=%d, date=%s, duration=%d",
		len(slots), req.BarberID, req.Date.Format(domain.DateFormat), totalDuration)

	return &Response{
		Date:                 req.Date,
		BarberID:             req.BarberID,
		TotalDurationMinutes: totalDuration,
		TotalCost:            totalCost,
		Slots:                slots,
	}, nil
}
