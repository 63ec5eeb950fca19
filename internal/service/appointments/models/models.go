package models

import (
	"errors"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetAgendaRequest запрос агенды с фильтрацией
type GetAgendaRequest struct {
	Date            *time.Time `json:"date,omitempty"`            // Конкретная дата (опционально)
	ProfessionalID  *int64     `json:"professionalId,omitempty"`  // Фильтр по профессионалу (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить завершенные и отмененные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAgendaRequest) ToDomainFilter() (domain.AgendaFilter, error) {
	filter := domain.AgendaFilter{
		Date:            r.Date,
		ProfessionalID:  r.ProfessionalID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status   string `json:"status"`             // completed или cancelled
	MarkPaid bool   `json:"markPaid,omitempty"` // Отметить оплату при завершении
}

// CancelRequest запрос на отмену записи
type CancelRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID int64 `json:"id"`

	ClientID    int64  `json:"clientId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	ProfessionalID   int64  `json:"professionalId"`
	ProfessionalName string `json:"professionalName"`

	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServiceType     string  `json:"serviceType"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`

	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"

	Status        string               `json:"status"`
	PaymentStatus string               `json:"paymentStatus"`
	Products      []domain.ProductLine `json:"products,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		ClientID:           a.ClientID,
		ClientName:         a.ClientName,
		ClientPhone:        a.ClientPhone,
		ProfessionalID:     a.ProfessionalID,
		ProfessionalName:   a.ProfessionalName,
		ServiceID:          a.ServiceID,
		ServiceName:        a.ServiceName,
		ServiceType:        string(a.ServiceType),
		DurationMinutes:    a.DurationMinutes,
		Price:              a.Price,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		Status:             string(a.Status),
		PaymentStatus:      string(a.PaymentStatus),
		Products:           a.Products,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if resp := FromDomainAppointment(a); resp != nil {
			result.Appointments = append(result.Appointments, *resp)
		}
	}

	return result
}

// ToDomainStatus конвертирует строку в domain статус
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(status) {
	case domain.StatusScheduled:
		return domain.StatusScheduled, nil
	case domain.StatusCompleted:
		return domain.StatusCompleted, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
