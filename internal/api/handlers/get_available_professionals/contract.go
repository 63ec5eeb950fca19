package get_available_professionals

import (
	"context"

	availableProfessionals "github.com/cortafila/CF-BookingService/internal/usecase/get_available_professionals"
)

type GetAvailableProfessionalsUseCase interface {
	Execute(ctx context.Context, req *availableProfessionals.Request) (*availableProfessionals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
