package update_professional

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/service/professionals/models"
)

type ProfessionalService interface {
	Update(ctx context.Context, id int64, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
