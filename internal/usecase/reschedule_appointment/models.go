package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	UserID        int64            // ID пользователя из заголовка авторизации
	AppointmentID int64            // ID переносимой записи
	Date          time.Time        // Новая дата
	StartTime     types.TimeString // Новое время начала в формате HH:MM
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID              int64
	UserID          int64
	BarberID        int64
	BarberName      string
	Services        []domain.ServiceItem
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	TotalCost       float64
	Status          string
}
