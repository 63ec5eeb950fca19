package professionals

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error)
	Update(ctx context.Context, id int64, prof *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
