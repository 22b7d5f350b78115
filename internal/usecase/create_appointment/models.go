package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID     int64            // ID пользователя из заголовка авторизации
	BarberID   int64            // ID барбера
	ServiceIDs []int64          // Выбранные услуги из каталога барбера
	Date       time.Time        // Дата записи
	StartTime  types.TimeString // Время начала в формате HH:MM
}

// Response модель ответа с созданной записью
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
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
