package domain

import "time"

// BusinessSettings is the tenant-wide configuration singleton.
// ScheduleMonthsAhead bounds how far clients may book, TimeSlotInterval sets
// slot granularity, InactiveDays closes whole weekdays business-wide on top
// of every professional's individual schedule.
type BusinessSettings struct {
	ID                    int64
	ScheduleMonthsAhead   int   // 1..3
	TimeSlotInterval      int   // 30 or 60 minutes
	InactiveDays          []int // weekday numbers, 0=Sunday..6=Saturday
	WhatsAppMessage       string
	ShowProductsInBooking bool
	BusinessName          string
	BusinessPhone         string
	BusinessCnpj          string
	BusinessAddress       string
	CompanyLogo           *string
	UpdatedAt             time.Time
}

// IsInactiveDay returns true if the weekday is closed business-wide
func (s *BusinessSettings) IsInactiveDay(weekday time.Weekday) bool {
	for _, day := range s.InactiveDays {
		if day == int(weekday) {
			return true
		}
	}
	return false
}

// DefaultSettings returns the settings used before the admin saves any
func DefaultSettings() *BusinessSettings {
	return &BusinessSettings{
		ScheduleMonthsAhead:   DefaultScheduleMonthsAhead,
		TimeSlotInterval:      DefaultTimeSlotInterval,
		InactiveDays:          []int{0}, // Sunday closed by default
		WhatsAppMessage:       DefaultWhatsAppMessage,
		ShowProductsInBooking: true,
	}
}
