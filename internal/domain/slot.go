package domain

import "github.com/cortafila/CF-BookingService/pkg/types"

// TimeSlot is one bookable start time within a professional's work hours,
// tagged with its availability
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
}
