package promotions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	promotionRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/promotion"
	"github.com/m04kA/SMC-BarberService/internal/service/promotions/models"
)

// Service сервис для работы с маркетинговыми акциями
type Service struct {
	promotionRepo PromotionRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса акций
func NewService(promotionRepo PromotionRepository, logger Logger) *Service {
	return &Service{
		promotionRepo: promotionRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// ListActive возвращает действующие акции, отсортированные по сроку окончания
func (s *Service) ListActive(ctx context.Context) (*models.PromotionListResponse, error) {
	now := s.timeProvider.Now()

	promotions, err := s.promotionRepo.ListActive(ctx, now)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActive: fetched %d active promotions", len(promotions))
	return models.FromDomainPromotionList(promotions), nil
}

// Create создает новую акцию
func (s *Service) Create(ctx context.Context, req *models.CreatePromotionRequest) (*models.PromotionResponse, error) {
	s.logger.Info("Create: creating promotion title=%q", req.Title)

	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.DiscountPercent < domain.MinDiscountPercent || req.DiscountPercent > domain.MaxDiscountPercent {
		return nil, fmt.Errorf("%w: discountPercent must be between %d and %d",
			ErrInvalidInput, domain.MinDiscountPercent, domain.MaxDiscountPercent)
	}

	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid validUntil format: %v", ErrInvalidInput, err)
	}
	if !validUntil.After(s.timeProvider.Now()) {
		return nil, fmt.Errorf("%w: validUntil must be in the future", ErrInvalidInput)
	}

	created, err := s.promotionRepo.Create(ctx, &domain.Promotion{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		ValidUntil:      validUntil,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created promotion id=%d", created.ID)
	return models.FromDomainPromotion(created), nil
}

// Delete удаляет акцию
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting promotion id=%d", id)

	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, promotionRepo.ErrPromotionNotFound) {
			s.logger.Warn("Delete: promotion id=%d not found", id)
			return ErrPromotionNotFound
		}
		s.logger.Error("Delete: repository error for promotion id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted promotion id=%d", id)
	return nil
}
