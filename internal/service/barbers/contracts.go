package barbers

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// BarberDirectoryClient интерфейс клиента справочника барберов
type BarberDirectoryClient interface {
	ListBarbers(ctx context.Context) ([]*domain.Barber, error)
	GetBarber(ctx context.Context, barberID int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
