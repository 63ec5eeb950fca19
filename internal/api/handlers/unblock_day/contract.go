package unblock_day

import (
	"context"

	"github.com/cortafila/CF-BookingService/internal/integrations/authservice"
)

type BlockedDaysService interface {
	UnblockDay(ctx context.Context, user *authservice.User, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
