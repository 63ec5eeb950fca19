package get_available_dates

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
	// GetDaysInRange получает блокировки дней всех профессионалов в интервале дат
	GetDaysInRange(ctx context.Context, from, to time.Time) ([]*domain.BlockedDay, error)
}

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BusinessSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
