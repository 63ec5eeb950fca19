package get_available_professionals

import (
	"context"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	List(ctx context.Context) ([]*domain.Professional, error)
}

// BlockedRepository интерфейс репозитория блокировок
type BlockedRepository interface {
	GetDaysInRange(ctx context.Context, from, to time.Time) ([]*domain.BlockedDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
