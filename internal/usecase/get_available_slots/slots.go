package get_available_slots

import (
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/types"
)

// generateSlotGrid генерирует стартовые времена слотов рабочего дня.
// Сетка идет по целым часам от floor(workStart) до floor(workEnd), конец
// исключается: при workEnd="18:00" слот 18:00 не генерируется, закрытие
// смены не является временем начала записи.
func generateSlotGrid(workStart, workEnd types.TimeString, interval int) []types.TimeString {
	minuteOffsets := []int{0}
	if interval == 30 {
		minuteOffsets = []int{0, 30}
	}

	slots := make([]types.TimeString, 0)
	for hour := workStart.Hour(); hour < workEnd.Hour(); hour++ {
		for _, minute := range minuteOffsets {
			slots = append(slots, types.MinutesToTimeString(hour*60+minute))
		}
	}

	return slots
}

// isPastSlot проверяет, что слот уже прошел.
// Прошедшим считается только слот сегодняшнего дня, время которого не позже
// текущего: текущие полчаса/час и все более раннее недоступно, будущее
// время сегодня остается доступным.
func isPastSlot(slot types.TimeString, date, now time.Time) bool {
	if !isSameDay(date, now) {
		return false
	}
	current := types.NewTimeString(now)
	return !slot.IsAfter(current)
}

// overlapsAppointment проверяет пересечение интервала слота с занятыми
// записями. Интервалы сравниваются в минутах от полуночи, пересечение
// строгое: граничащие интервалы (конец одного равен началу другого) не
// конфликтуют. Завершенные и отмененные записи слот не занимают.
func overlapsAppointment(slot types.TimeString, serviceDuration int, appointments []*domain.Appointment) bool {
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

// isBlockedTime проверяет точечную блокировку слота
func isBlockedTime(slot types.TimeString, blockedTimes []*domain.BlockedTime) bool {
	for _, bt := range blockedTimes {
		if bt.Time == slot {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
