package block_day

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/integrations/authservice"
	"github.com/cortafila/CF-BookingService/internal/service/blockeddays/models"
)

type BlockedDaysService interface {
	BlockDay(ctx context.Context, user *authservice.User, req *models.BlockDayRequest) (*models.BlockedDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
