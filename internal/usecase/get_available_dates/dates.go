package get_available_dates

import (
	"fmt"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

// computeAvailableDates перебирает окно бронирования и оставляет даты,
// проходящие все правила: дата не в прошлом, в пределах окна (календарное
// прибавление месяцев, верхняя граница исключается), день недели не закрыт
// для всего бизнеса и есть хотя бы один подходящий профессионал.
// Пустой результат валиден: "нет доступных дат" не ошибка.
func computeAvailableDates(
	serviceID int64,
	professionals []*domain.Professional,
	blockedDays []*domain.BlockedDay,
	settings *domain.BusinessSettings,
	now time.Time,
	monthFilter *time.Time,
) []time.Time {
	today := truncateToDay(now)
	windowEnd := today.AddDate(0, settings.ScheduleMonthsAhead, 0)

	blockedSet := buildBlockedSet(blockedDays)

	dates := make([]time.Time, 0)
	for d := today; d.Before(windowEnd); d = d.AddDate(0, 0, 1) {
		if monthFilter != nil && (d.Year() != monthFilter.Year() || d.Month() != monthFilter.Month()) {
			continue
		}

		if settings.IsInactiveDay(d.Weekday()) {
			continue
		}

		if hasQualifiedProfessional(serviceID, d, professionals, blockedSet) {
			dates = append(dates, d)
		}
	}

	return dates
}

// hasQualifiedProfessional проверяет, что на дату есть хотя бы один
// профессионал, который выполняет услугу, работает в этот день недели и
// не заблокировал этот день
func hasQualifiedProfessional(
	serviceID int64,
	date time.Time,
	professionals []*domain.Professional,
	blockedSet map[string]struct{},
) bool {
	for _, prof := range professionals {
		if !prof.OffersService(serviceID) {
			continue
		}
		if !prof.WorksOn(date.Weekday()) {
			continue
		}
		if _, blocked := blockedSet[blockedKey(prof.ID, date)]; blocked {
			continue
		}
		return true
	}
	return false
}

// buildBlockedSet строит множество блокировок с ключом (профессионал, дата)
func buildBlockedSet(blockedDays []*domain.BlockedDay) map[string]struct{} {
	set := make(map[string]struct{}, len(blockedDays))
	for _, day := range blockedDays {
		set[blockedKey(day.ProfessionalID, day.Date)] = struct{}{}
	}
	return set
}

func blockedKey(professionalID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", professionalID, date.Format(domain.DateFormat))
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
