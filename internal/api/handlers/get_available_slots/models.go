package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                 string   `json:"date"`
	BarberID             int64    `json:"barberId"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	TotalCost            float64  `json:"totalCost"`
	Slots                []string `json:"slots"` // Времена начала "HH:MM" в хронологическом порядке
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:                 resp.Date.Format(domain.DateFormat),
		BarberID:             resp.BarberID,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		TotalCost:            resp.TotalCost,
		Slots:                slots,
	}
}

// ParseDate парсит дату из query параметра
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(domain.DateFormat, dateStr)
}

// ParseServiceIDs парсит список ID услуг из query параметра (через запятую)
func ParseServiceIDs(serviceIDsStr string) ([]int64, error) {
	parts := strings.Split(serviceIDsStr, ",")
	serviceIDs := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		serviceIDs = append(serviceIDs, id)
	}
	return serviceIDs, nil
}
