package domain

import (
	"time"

	"github.com/cortafila/CF-BookingService/pkg/types"
)

// BlockedDay makes a professional fully unavailable on one date, overriding
// their weekly work-day template
type BlockedDay struct {
	ID             int64
	ProfessionalID int64
	Date           time.Time
	Reason         *string
	CreatedAt      time.Time
}

// BlockedTime blocks a single slot start time for a professional on one date
type BlockedTime struct {
	ID             int64
	ProfessionalID int64
	Date           time.Time
	Time           types.TimeString
	Reason         *string
	CreatedAt      time.Time
}
