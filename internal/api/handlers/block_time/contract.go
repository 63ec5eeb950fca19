package block_time

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/integrations/authservice"
	"github.com/cortafila/CF-BookingService/internal/service/blockeddays/models"
)

type BlockedDaysService interface {
	BlockTime(ctx context.Context, user *authservice.User, req *models.BlockTimeRequest) (*models.BlockedTimeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
