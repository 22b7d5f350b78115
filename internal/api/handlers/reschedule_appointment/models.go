package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	rescheduleAppointment "github.com/m04kA/SMC-BarberService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	AppointmentDate string `json:"appointmentDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
}

// ServiceItemResponse услуга в составе записи
type ServiceItemResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Cost            float64 `json:"cost"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64                 `json:"id"`
	UserID          int64                 `json:"userId"`
	BarberID        int64                 `json:"barberId"`
	BarberName      string                `json:"barberName"`
	Services        []ServiceItemResponse `json:"services"`
	AppointmentDate string                `json:"appointmentDate"`
	StartTime       string                `json:"startTime"`
	DurationMinutes int                   `json:"durationMinutes"`
	TotalCost       float64               `json:"totalCost"`
	Status          string                `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(userID, appointmentID int64) (*rescheduleAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		UserID:        userID,
		AppointmentID: appointmentID,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
	services := make([]ServiceItemResponse, len(resp.Services))
	for i, s := range resp.Services {
		services[i] = ServiceItemResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Cost:            s.Cost,
		}
	}

	return &AppointmentResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		BarberID:        resp.BarberID,
		BarberName:      resp.BarberName,
		Services:        services,
		AppointmentDate: resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		TotalCost:       resp.TotalCost,
		Status:          resp.Status,
	}
}
