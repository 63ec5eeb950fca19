package get_available_dates

import (
	"testing"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

func weekdayProfessional() *domain.Professional {
	return &domain.Professional{
		ID:         1,
		Name:       "Carlos",
		ServiceIDs: []int64{10},
		WorkDays:   []int{1, 2, 3, 4, 5},
		WorkStart:  "09:00",
		WorkEnd:    "18:00",
	}
}

func settingsWithWindow(months int, inactiveDays []int) *domain.BusinessSettings {
	return &domain.BusinessSettings{
		ScheduleMonthsAhead: months,
		TimeSlotInterval:    30,
		InactiveDays:        inactiveDays,
	}
}

func containsDate(dates []time.Time, target time.Time) bool {
	for _, d := range dates {
		if d.Equal(target) {
			return true
		}
	}
	return false
}

func TestComputeAvailableDates_WindowBounds(t *testing.T) {
	// 2025-10-14 вторник, окно 1 месяц: [сегодня, сегодня+1 месяц)
	now := time.Date(2025, 10, 14, 15, 30, 0, 0, time.UTC)
	professionals := []*domain.Professional{weekdayProfessional()}
	settings := settingsWithWindow(1, nil)

	dates := computeAvailableDates(10, professionals, nil, settings, now, nil)

	today := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)

	if !containsDate(dates, today) {
		t.Error("today must be inside the window")
	}
	if containsDate(dates, windowEnd) {
		t.Error("window upper bound must be exclusive")
	}
	for _, d := range dates {
		if d.Before(today) {
			t.Errorf("date %s is in the past", d.Format(domain.DateFormat))
		}
	}
}

func TestComputeAvailableDates_SkipsWeekendsWithoutWorkers(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	professionals := []*domain.Professional{weekdayProfessional()}
	settings := settingsWithWindow(1, nil)

	dates := computeAvailableDates(10, professionals, nil, settings, now, nil)

	for _, d := range dates {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			t.Errorf("no professional works on %s, date %s must be excluded",
				d.Weekday(), d.Format(domain.DateFormat))
		}
	}
}

func TestComputeAvailableDates_InactiveDayClosesBusiness(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	// Профессионал работает по понедельникам, но бизнес закрыт
	professionals := []*domain.Professional{weekdayProfessional()}
	settings := settingsWithWindow(1, []int{1}) // Monday

	dates := computeAvailableDates(10, professionals, nil, settings, now, nil)

	for _, d := range dates {
		if d.Weekday() == time.Monday {
			t.Errorf("Monday %s must be excluded business-wide", d.Format(domain.DateFormat))
		}
	}
}

func TestComputeAvailableDates_BlockedProfessional(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	blockedDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	professionals := []*domain.Professional{weekdayProfessional()}
	blockedDays := []*domain.BlockedDay{{ProfessionalID: 1, Date: blockedDate}}
	settings := settingsWithWindow(1, nil)

	dates := computeAvailableDates(10, professionals, blockedDays, settings, now, nil)

	if containsDate(dates, blockedDate) {
		t.Error("date blocked by the only qualified professional must be excluded")
	}
}

func TestComputeAvailableDates_SecondProfessionalKeepsDate(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	blockedDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	second := weekdayProfessional()
	second.ID = 2

	professionals := []*domain.Professional{weekdayProfessional(), second}
	blockedDays := []*domain.BlockedDay{{ProfessionalID: 1, Date: blockedDate}}
	settings := settingsWithWindow(1, nil)

	dates := computeAvailableDates(10, professionals, blockedDays, settings, now, nil)

	if !containsDate(dates, blockedDate) {
		t.Error("date must stay available while another qualified professional works")
	}
}

func TestComputeAvailableDates_NoQualifiedProfessional(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	professionals := []*domain.Professional{weekdayProfessional()}
	settings := settingsWithWindow(1, nil)

	// Услугу 99 не выполняет никто
	dates := computeAvailableDates(99, professionals, nil, settings, now, nil)

	if len(dates) != 0 {
		t.Fatalf("expected no dates, got %d", len(dates))
	}
}

func TestComputeAvailableDates_MonthFilter(t *testing.T) {
	now := time.Date(2025, 10, 14, 8, 0, 0, 0, time.UTC)
	professionals := []*domain.Professional{weekdayProfessional()}
	settings := settingsWithWindow(2, nil)

	month := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	dates := computeAvailableDates(10, professionals, nil, settings, now, &month)

	if len(dates) == 0 {
		t.Fatal("expected dates in November")
	}
	for _, d := range dates {
		if d.Month() != time.November || d.Year() != 2025 {
			t.Errorf("date %s is outside the requested month", d.Format(domain.DateFormat))
		}
	}
}
