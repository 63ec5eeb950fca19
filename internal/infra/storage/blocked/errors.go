package blocked

import "errors"

var (
	// ErrBlockedDayNotFound возвращается, когда блокировка дня не найдена
	ErrBlockedDayNotFound = errors.New("blocked.repository: blocked day not found")

	// ErrBlockedTimeNotFound возвращается, когда блокировка слота не найдена
	ErrBlockedTimeNotFound = errors.New("blocked.repository: blocked time not found")

	// ErrDayAlreadyBlocked возвращается при нарушении уникальности (professional_id, date)
	ErrDayAlreadyBlocked = errors.New("blocked.repository: day already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blocked.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blocked.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blocked.repository: failed to scan row")
)
