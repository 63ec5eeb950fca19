package get_available_dates

import (
	"github.com/cortafila/CF-BookingService/internal/domain"
	availableDates "github.com/cortafila/CF-BookingService/internal/usecase/get_available_dates"
)

// Response HTTP ответ со списком доступных дат
type Response struct {
	ServiceID int64    `json:"serviceId"`
	Dates     []string `json:"dates"` // ISO даты по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *availableDates.Response) *Response {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &Response{
		ServiceID: resp.ServiceID,
		Dates:     dates,
	}
}
