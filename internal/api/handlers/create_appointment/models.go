package create_appointment

import (
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
	createAppointment "github.com/cortafila/CF-BookingService/internal/usecase/create_appointment"
	"github.com/cortafila/CF-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP запрос на создание записи
type CreateAppointmentRequest struct {
	ServiceID      int64                `json:"serviceId"`
	ProfessionalID int64                `json:"professionalId"`
	Date           string               `json:"date"` // "2025-10-15"
	Time           string               `json:"time"` // "10:00"
	ClientName     string               `json:"clientName"`
	ClientPhone    string               `json:"clientPhone"`
	ClientEmail    *string              `json:"clientEmail,omitempty"`
	Products       []domain.ProductLine `json:"products,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ServiceID:      r.ServiceID,
		ProfessionalID: r.ProfessionalID,
		Date:           date,
		StartTime:      startTime,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ClientEmail:    r.ClientEmail,
		Products:       r.Products,
	}, nil
}

// AppointmentResponse созданная запись
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	ClientID         int64   `json:"clientId"`
	ClientName       string  `json:"clientName"`
	ClientPhone      string  `json:"clientPhone"`
	ProfessionalID   int64   `json:"professionalId"`
	ProfessionalName string  `json:"professionalName"`
	ServiceID        int64   `json:"serviceId"`
	ServiceName      string  `json:"serviceName"`
	DurationMinutes  int     `json:"durationMinutes"`
	Price            float64 `json:"price"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Status           string  `json:"status"`
}

// WhatsAppResponse подтверждение для отправки в WhatsApp
type WhatsAppResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Response HTTP ответ на создание записи
type Response struct {
	Appointment AppointmentResponse `json:"appointment"`
	WhatsApp    WhatsAppResponse    `json:"whatsapp"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createAppointment.Response) *Response {
	a := resp.Appointment

	return &Response{
		Appointment: AppointmentResponse{
			ID:               a.ID,
			ClientID:         a.ClientID,
			ClientName:       a.ClientName,
			ClientPhone:      a.ClientPhone,
			ProfessionalID:   a.ProfessionalID,
			ProfessionalName: a.ProfessionalName,
			ServiceID:        a.ServiceID,
			ServiceName:      a.ServiceName,
			DurationMinutes:  a.DurationMinutes,
			Price:            a.Price,
			Date:             a.Date.Format(domain.DateFormat),
			Time:             a.StartTime.String(),
			Status:           string(a.Status),
		},
		WhatsApp: WhatsAppResponse{
			Message: resp.WhatsAppMessage,
			Link:    resp.WhatsAppLink,
		},
	}
}
