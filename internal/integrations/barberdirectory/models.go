package barberdirectory

import "github.com/m04kA/SMC-BarberService/internal/domain"

// Barber модель барбера из справочника
type Barber struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio"`
	ExperienceYears int       `json:"experienceYears"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	Services        []Service `json:"services"`
}

// Service модель услуги из каталога барбера
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Cost            float64 `json:"cost"`
}

// ErrorResponse модель ошибки от справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует модель справочника в доменную модель
func (b *Barber) ToDomain() *domain.Barber {
	services := make([]domain.ServiceItem, len(b.Services))
	for i, s := range b.Services {
		services[i] = domain.ServiceItem{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Cost:            s.Cost,
		}
	}

	return &domain.Barber{
		ID:              b.ID,
		Name:            b.Name,
		Bio:             b.Bio,
		ExperienceYears: b.ExperienceYears,
		ImageURL:        b.ImageURL,
		Services:        services,
	}
}
