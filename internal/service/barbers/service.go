package barbers

import (
	"context"
	"errors"
	"fmt"

	barberClient "github.com/m04kA/SMC-BarberService/internal/integrations/barberdirectory"
	"github.com/m04kA/SMC-BarberService/internal/service/barbers/models"
)

// Service сервис для работы со справочником барберов
type Service struct {
	barberClient BarberDirectoryClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса барберов
func NewService(barberClient BarberDirectoryClient, logger Logger) *Service {
	return &Service{
		barberClient: barberClient,
		logger:       logger,
	}
}

// List возвращает всех барберов с их каталогами услуг
func (s *Service) List(ctx context.Context) (*models.BarberListResponse, error) {
	barbers, err := s.barberClient.ListBarbers(ctx)
	if err != nil {
		s.logger.Error("List: failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: List - directory error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d barbers", len(barbers))
	return models.FromDomainBarberList(barbers), nil
}

// GetByID возвращает барбера по ID вместе с каталогом услуг
func (s *Service) GetByID(ctx context.Context, barberID int64) (*models.BarberResponse, error) {
	barber, err := s.barberClient.GetBarber(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberClient.ErrBarberNotFound) {
			s.logger.Warn("GetByID: barber id=%d not found", barberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetByID: failed to get barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: GetByID - directory error: %v", ErrInternal, err)
	}

	return models.FromDomainBarber(barber), nil
}
