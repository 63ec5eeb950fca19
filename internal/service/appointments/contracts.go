package appointments

import (
	"context"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
	GetByClientPhone(ctx context.Context, phone string, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, paymentStatus *domain.PaymentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	// RegisterVisit увеличивает счетчик визитов клиента
	RegisterVisit(ctx context.Context, id int64, visitDate time.Time) error
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
