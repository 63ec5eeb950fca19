package domain

import (
	"time"

	"github.com/cortafila/CF-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// PaymentStatus represents the payment state of an appointment
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ProductLine is a product add-on attached to an appointment
type ProductLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Appointment represents a scheduled or historical booking.
// Client, professional and service data are denormalized at booking time so
// history survives later edits or deletions of the referenced entities.
type Appointment struct {
	ID int64

	ClientID    int64
	ClientName  string
	ClientPhone string

	ProfessionalID   int64
	ProfessionalName string

	ServiceID       int64
	ServiceName     string
	ServiceType     ServiceType
	DurationMinutes int
	Price           float64

	Date      time.Time
	StartTime types.TimeString

	Status        AppointmentStatus
	PaymentStatus PaymentStatus
	Products      []ProductLine

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the appointment blocks its time slot.
// Only scheduled appointments occupy slots; completed and cancelled do not.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusScheduled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeCompleted returns true if the appointment can be marked completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusScheduled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// EndTime returns the wall-clock end of the appointment
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// AgendaFilter фильтр для выборки записей агенды
type AgendaFilter struct {
	Date            *time.Time         // Конкретная дата (опционально)
	ProfessionalID  *int64             // Фильтр по профессионалу (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли завершенные и отмененные записи
}

// InactiveStatuses список статусов, не занимающих слот
// Используется при подсчёте занятых слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}
