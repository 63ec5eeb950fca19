package create_appointment

import (
	"context"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	// GetWithFilter внутри транзакции с фильтром по дате и профессионалу
	// блокирует строки (FOR UPDATE)
	GetWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// BlockedRepository интерфейс репозитория блокировок
type BlockedRepository interface {
	GetDayForProfessional(ctx context.Context, professionalID int64, date time.Time) (*domain.BlockedDay, error)
	GetTimesForDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedTime, error)
}

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BusinessSettings, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в сериализуемой транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
