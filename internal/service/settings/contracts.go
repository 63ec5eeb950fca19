package settings

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BusinessSettings, error)
	Upsert(ctx context.Context, s *domain.BusinessSettings) (*domain.BusinessSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
