package get_available_slots

import (
	"github.com/cortafila/CF-BookingService/internal/domain"
	availableSlots "github.com/cortafila/CF-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse временной слот с флагом доступности
type SlotResponse struct {
	Time      string `json:"time"` // "10:00"
	Available bool   `json:"available"`
}

// Response HTTP ответ со слотами на дату
type Response struct {
	Date           string         `json:"date"`
	ProfessionalID int64          `json:"professionalId"`
	ServiceID      int64          `json:"serviceId"`
	Slots          []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *availableSlots.Response) *Response {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.StartTime.String(),
			Available: s.Available,
		})
	}

	return &Response{
		Date:           resp.Date.Format(domain.DateFormat),
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		Slots:          slots,
	}
}
