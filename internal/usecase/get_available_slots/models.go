package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID   int64     // ID барбера
	ServiceIDs []int64   // Выбранные услуги из каталога барбера
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date                 time.Time          // Дата, на которую запрашивались слоты
	BarberID             int64              // ID барбера
	TotalDurationMinutes int                // Суммарная длительность выбранных услуг
	TotalCost            float64            // Суммарная стоимость выбранных услуг
	Slots                []types.TimeString // Доступные времена начала в хронологическом порядке
}
