package get_blocked_days

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/integrations/authservice"
	"github.com/cortafila/CF-BookingService/internal/service/blockeddays/models"
)

type BlockedDaysService interface {
	ListDays(ctx context.Context, user *authservice.User, professionalID int64) (*models.BlockedDayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
