package get_client_appointments

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByClientPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
