package domain

import (
	"time"

	"github.com/cortafila/CF-BookingService/pkg/types"
)

// Professional represents a staff member who performs services.
// WorkDays and WorkHours form the recurring weekly availability template;
// BlockedDay records override it per date.
type Professional struct {
	ID         int64
	Name       string
	Avatar     string // display initials
	Photo      *string
	Role       string
	Phone      string
	Email      string
	ServiceIDs []int64 // services the professional is qualified to perform
	WorkDays   []int   // weekday numbers, 0=Sunday..6=Saturday
	WorkStart  types.TimeString
	WorkEnd    types.TimeString
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OffersService returns true if the professional is qualified for the service
func (p *Professional) OffersService(serviceID int64) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// WorksOn returns true if weekday is part of the professional's weekly template
func (p *Professional) WorksOn(weekday time.Weekday) bool {
	for _, day := range p.WorkDays {
		if day == int(weekday) {
			return true
		}
	}
	return false
}
