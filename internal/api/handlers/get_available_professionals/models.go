package get_available_professionals

import (
	"github.com/cortafila/CF-BookingService/internal/domain"
	availableProfessionals "github.com/cortafila/CF-BookingService/internal/usecase/get_available_professionals"
)

// ProfessionalResponse краткая карточка профессионала
type ProfessionalResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Photo  *string `json:"photo,omitempty"`
	Role   string  `json:"role"`
}

// Response HTTP ответ со списком доступных профессионалов
type Response struct {
	ServiceID     int64                  `json:"serviceId"`
	Date          string                 `json:"date"`
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *availableProfessionals.Response) *Response {
	professionals := make([]ProfessionalResponse, 0, len(resp.Professionals))
	for _, p := range resp.Professionals {
		professionals = append(professionals, ProfessionalResponse{
			ID:     p.ID,
			Name:   p.Name,
			Avatar: p.Avatar,
			Photo:  p.Photo,
			Role:   p.Role,
		})
	}

	return &Response{
		ServiceID:     resp.ServiceID,
		Date:          resp.Date.Format(domain.DateFormat),
		Professionals: professionals,
	}
}
