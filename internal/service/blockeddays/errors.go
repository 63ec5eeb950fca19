package blockeddays

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrBlockedDayNotFound возвращается, когда блокировка дня не найдена
	ErrBlockedDayNotFound = errors.New("blocked day not found")

	// ErrBlockedTimeNotFound возвращается, когда блокировка слота не найдена
	ErrBlockedTimeNotFound = errors.New("blocked time not found")

	// ErrDayAlreadyBlocked возвращается при повторной блокировке того же дня
	ErrDayAlreadyBlocked = errors.New("day is already blocked")

	// ErrDayHasAppointments возвращается при попытке заблокировать день, на
	// который есть активные записи. Блокировка отклоняется целиком, записи
	// не отменяются
	ErrDayHasAppointments = errors.New("day has scheduled appointments")

	// ErrAccessDenied возвращается, когда сотрудник управляет чужим расписанием
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
