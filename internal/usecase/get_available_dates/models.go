package get_available_dates

import "time"

// Request модель запроса на получение доступных дат
type Request struct {
	ServiceID int64   // ID услуги
	Month     *string // Опциональный фильтр по месяцу в формате YYYY-MM
}

// Response модель ответа со списком доступных дат
type Response struct {
	ServiceID int64       // ID услуги
	Dates     []time.Time // Доступные даты по возрастанию
}
