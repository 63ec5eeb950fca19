package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

var (
	// ErrValidation возвращается при нарушении инвариантов настроек
	ErrValidation = errors.New("invalid settings payload")
)

// Request модели

// UpdateSettingsRequest запрос на сохранение настроек бизнеса
type UpdateSettingsRequest struct {
	ScheduleMonthsAhead   int     `json:"scheduleMonthsAhead"`
	TimeSlotInterval      int     `json:"timeSlotInterval"`
	InactiveDays          []int   `json:"inactiveDays"`
	WhatsAppMessage       string  `json:"whatsappMessage"`
	ShowProductsInBooking bool    `json:"showProductsInBooking"`
	BusinessName          string  `json:"businessName"`
	BusinessPhone         string  `json:"businessPhone"`
	BusinessCnpj          string  `json:"businessCnpj"`
	BusinessAddress       string  `json:"businessAddress"`
	CompanyLogo           *string `json:"companyLogo,omitempty"`
}

// Validate проверяет инварианты: окно бронирования 1..3 месяца, интервал
// 30 или 60 минут, неактивные дни в диапазоне 0..6 без повторов
func (r *UpdateSettingsRequest) Validate() error {
	if r.ScheduleMonthsAhead < domain.MinScheduleMonthsAhead || r.ScheduleMonthsAhead > domain.MaxScheduleMonthsAhead {
		return fmt.Errorf("%w: scheduleMonthsAhead must be between %d and %d",
			ErrValidation, domain.MinScheduleMonthsAhead, domain.MaxScheduleMonthsAhead)
	}

	validInterval := false
	for _, interval := range domain.AllowedTimeSlotIntervals {
		if r.TimeSlotInterval == interval {
			validInterval = true
			break
		}
	}
	if !validInterval {
		return fmt.Errorf("%w: timeSlotInterval must be one of %v", ErrValidation, domain.AllowedTimeSlotIntervals)
	}

	seen := make(map[int]struct{}, len(r.InactiveDays))
	for _, day := range r.InactiveDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: inactiveDays must contain weekday numbers 0..6", ErrValidation)
		}
		if _, dup := seen[day]; dup {
			return fmt.Errorf("%w: inactiveDays must not contain duplicates", ErrValidation)
		}
		seen[day] = struct{}{}
	}

	return nil
}

// ToDomain конвертирует валидный request в domain модель
func (r *UpdateSettingsRequest) ToDomain() *domain.BusinessSettings {
	whatsAppMessage := r.WhatsAppMessage
	if whatsAppMessage == "" {
		whatsAppMessage = domain.DefaultWhatsAppMessage
	}

	return &domain.BusinessSettings{
		ScheduleMonthsAhead:   r.ScheduleMonthsAhead,
		TimeSlotInterval:      r.TimeSlotInterval,
		InactiveDays:          r.InactiveDays,
		WhatsAppMessage:       whatsAppMessage,
		ShowProductsInBooking: r.ShowProductsInBooking,
		BusinessName:          r.BusinessName,
		BusinessPhone:         r.BusinessPhone,
		BusinessCnpj:          r.BusinessCnpj,
		BusinessAddress:       r.BusinessAddress,
		CompanyLogo:           r.CompanyLogo,
	}
}

// Response модели

// SettingsResponse ответ с настройками бизнеса
type SettingsResponse struct {
	ScheduleMonthsAhead   int       `json:"scheduleMonthsAhead"`
	TimeSlotInterval      int       `json:"timeSlotInterval"`
	InactiveDays          []int     `json:"inactiveDays"`
	WhatsAppMessage       string    `json:"whatsappMessage"`
	ShowProductsInBooking bool      `json:"showProductsInBooking"`
	BusinessName          string    `json:"businessName"`
	BusinessPhone         string    `json:"businessPhone"`
	BusinessCnpj          string    `json:"businessCnpj"`
	BusinessAddress       string    `json:"businessAddress"`
	CompanyLogo           *string   `json:"companyLogo,omitempty"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.BusinessSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		ScheduleMonthsAhead:   s.ScheduleMonthsAhead,
		TimeSlotInterval:      s.TimeSlotInterval,
		InactiveDays:          s.InactiveDays,
		WhatsAppMessage:       s.WhatsAppMessage,
		ShowProductsInBooking: s.ShowProductsInBooking,
		BusinessName:          s.BusinessName,
		BusinessPhone:         s.BusinessPhone,
		BusinessCnpj:          s.BusinessCnpj,
		BusinessAddress:       s.BusinessAddress,
		CompanyLogo:           s.CompanyLogo,
		UpdatedAt:             s.UpdatedAt,
	}
}
