package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one serviceID is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// resolveServices находит каждую выбранную услугу в каталоге барбера.
// Длительности и цены берутся только из каталога, клиентским данным не доверяем.
func resolveServices(barber *domain.Barber, serviceIDs []int64) ([]domain.ServiceItem, error) {
	services := make([]domain.ServiceItem, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := barber.FindService(id)
		if !ok {
			return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotFound, id)
		}
		services = append(services, svc)
	}
	return services, nil
}
