package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// CreatePromotionRequest запрос на создание акции
type CreatePromotionRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DiscountPercent int     `json:"discountPercent"`
	ValidUntil      string  `json:"validUntil"` // ISO 8601 format
	ImageURL        *string `json:"imageUrl,omitempty"`
}

// PromotionResponse ответ с данными акции
type PromotionResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DiscountPercent int     `json:"discountPercent"`
	ValidUntil      string  `json:"validUntil"` // ISO 8601 format
	ImageURL        *string `json:"imageUrl,omitempty"`
}

// PromotionListResponse ответ со списком акций
type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

// FromDomainPromotion конвертирует domain модель в DTO
func FromDomainPromotion(p *domain.Promotion) *PromotionResponse {
	if p == nil {
		return nil
	}

	return &PromotionResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DiscountPercent: p.DiscountPercent,
		ValidUntil:      p.ValidUntil.Format(time.RFC3339),
		ImageURL:        p.ImageURL,
	}
}

// FromDomainPromotionList конвертирует список domain моделей в DTO
func FromDomainPromotionList(promotions []*domain.Promotion) *PromotionListResponse {
	if promotions == nil {
		return &PromotionListResponse{
			Promotions: []PromotionResponse{},
		}
	}

	resp := &PromotionListResponse{
		Promotions: make([]PromotionResponse, len(promotions)),
	}

	for i, promo := range promotions {
		if promoResp := FromDomainPromotion(promo); promoResp != nil {
			resp.Promotions[i] = *promoResp
		}
	}

	return resp
}
