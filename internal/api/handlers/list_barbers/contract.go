package list_barbers

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/barbers/models"
)

type BarberService interface {
	List(ctx context.Context) (*models.BarberListResponse, error)
	GetByID(ctx context.Context, barberID int64) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
