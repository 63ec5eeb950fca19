package blockeddays

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

// BlockedRepository интерфейс репозитория блокировок
type BlockedRepository interface {
	CreateDay(ctx context.Context, day *domain.BlockedDay) (*domain.BlockedDay, error)
	GetDayByID(ctx context.Context, id int64) (*domain.BlockedDay, error)
	ListDaysByProfessional(ctx context.Context, professionalID int64) ([]*domain.BlockedDay, error)
	DeleteDay(ctx context.Context, id int64) error
	CreateTime(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error)
	GetTimeByID(ctx context.Context, id int64) (*domain.BlockedTime, error)
	DeleteTime(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetWithFilter внутри транзакции с фильтром по дате и профессионалу
	// блокирует строки (FOR UPDATE)
	GetWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
