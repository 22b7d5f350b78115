package models

import "github.com/m04kA/SMC-BarberService/internal/domain"

// ServiceItemResponse услуга из каталога барбера
type ServiceItemResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Cost            float64 `json:"cost"`
}

// BarberResponse ответ с профилем барбера
type BarberResponse struct {
	ID              int64                 `json:"id"`
	Name            string                `json:"name"`
	Bio             string                `json:"bio,omitempty"`
	ExperienceYears int                   `json:"experienceYears"`
	ImageURL        *string               `json:"imageUrl,omitempty"`
	Services        []ServiceItemResponse `json:"services"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// FromDomainBarber конвертирует domain модель в DTO
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	if b == nil {
		return nil
	}

	services := make([]ServiceItemResponse, len(b.Services))
	for i, s := range b.Services {
		services[i] = ServiceItemResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Cost:            s.Cost,
		}
	}

	return &BarberResponse{
		ID:              b.ID,
		Name:            b.Name,
		Bio:             b.Bio,
		ExperienceYears: b.ExperienceYears,
		ImageURL:        b.ImageURL,
		Services:        services,
	}
}

// FromDomainBarberList конвертирует список domain моделей в DTO
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	if barbers == nil {
		return &BarberListResponse{
			Barbers: []BarberResponse{},
		}
	}

	resp := &BarberListResponse{
		Barbers: make([]BarberResponse, len(barbers)),
	}

	for i, barber := range barbers {
		if barberResp := FromDomainBarber(barber); barberResp != nil {
			resp.Barbers[i] = *barberResp
		}
	}

	return resp
}
