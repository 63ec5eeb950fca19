package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: clientName must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	for _, line := range req.Products {
		if line.ProductID <= 0 {
			return fmt.Errorf("%w: productId must be positive", ErrInvalidInput)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: product quantity must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и внутри окна бронирования
func validateDate(date, now time.Time, monthsAhead int) error {
	today := truncateToDay(now)
	requested := truncateToDay(date)

	if requested.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	windowEnd := today.AddDate(0, monthsAhead, 0)
	if !requested.Before(windowEnd) {
		return fmt.Errorf("%w: date is beyond the booking window", ErrInvalidDate)
	}

	return nil
}

// validateSlot проверяет, что запрошенное время является валидным стартом
// слота: внутри рабочих часов профессионала и по сетке гранулярности.
// Слот ровно во время закрытия смены не предлагается и не принимается.
func validateSlot(slot types.TimeString, prof *domain.Professional, interval int) error {
	hour := slot.Hour()
	if hour < prof.WorkStart.Hour() || hour >= prof.WorkEnd.Hour() {
		return fmt.Errorf("%w: time is outside working hours", ErrSlotUnavailable)
	}

	minute := slot.Minutes() % 60
	switch interval {
	case 60:
		if minute != 0 {
			return fmt.Errorf("%w: time is not aligned to the slot grid", ErrSlotUnavailable)
		}
	default:
		if minute != 0 && minute != 30 {
			return fmt.Errorf("%w: time is not aligned to the slot grid", ErrSlotUnavailable)
		}
	}

	return nil
}

// validateNotPastSlot проверяет, что слот сегодняшнего дня еще не прошел
func validateNotPastSlot(slot types.TimeString, date, now time.Time) error {
	if !isSameDay(date, now) {
		return nil
	}

	current := types.NewTimeString(now)
	if !slot.IsAfter(current) {
		return fmt.Errorf("%w: time has already passed today", ErrSlotUnavailable)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// hasOverlap проверяет строгое пересечение интервала нового слота с активными
// записями. Интервалы в минутах от полуночи, граничащие интервалы не
// конфликтуют. Сравнение не зависит от текущей гранулярности: запись,
// сделанная при другой настройке интервала, конфликтует наравне с остальными.
func hasOverlap(slot types.TimeString, serviceDuration int, appointments []*domain.Appointment) bool {
	slotStart := slot.Minutes()
	slotEnd := slotStart + serviceDuration

	for _, apt := range appointments {
		if !apt.OccupiesSlot() {
			continue
		}

		aptStart := apt.StartTime.Minutes()
		aptEnd := aptStart + apt.DurationMinutes

		if aptStart < slotEnd && aptEnd > slotStart {
			return true
		}
	}

	return false
}
