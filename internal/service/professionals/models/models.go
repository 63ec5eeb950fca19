package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/types"
)

var (
	// ErrValidation возвращается при нарушении инвариантов DTO
	ErrValidation = errors.New("invalid professional payload")
)

// Request модели

// ProfessionalRequest тело запроса на создание или обновление профессионала.
// Все поля обязательны, кроме photo и email: движок доступности потребляет
// только полностью валидные значения
type ProfessionalRequest struct {
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar"`
	Photo      *string `json:"photo,omitempty"`
	Role       string  `json:"role"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email,omitempty"`
	ServiceIDs []int64 `json:"serviceIds"`
	WorkDays   []int   `json:"workDays"`
	WorkStart  string  `json:"workStart"` // "09:00"
	WorkEnd    string  `json:"workEnd"`   // "18:00"
}

// Validate проверяет инварианты: имя непустое, workDays ⊆ {0..6} без
// повторов, рабочие часы в формате HH:MM и start < end
func (r *ProfessionalRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(r.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrValidation, domain.MaxNameLength)
	}

	if len(r.WorkDays) == 0 {
		return fmt.Errorf("%w: workDays is required", ErrValidation)
	}
	seen := make(map[int]struct{}, len(r.WorkDays))
	for _, day := range r.WorkDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: workDays must contain weekday numbers 0..6", ErrValidation)
		}
		if _, dup := seen[day]; dup {
			return fmt.Errorf("%w: workDays must not contain duplicates", ErrValidation)
		}
		seen[day] = struct{}{}
	}

	workStart, err := types.NewTimeStringFromString(r.WorkStart)
	if err != nil {
		return fmt.Errorf("%w: workStart must be in HH:MM format", ErrValidation)
	}
	workEnd, err := types.NewTimeStringFromString(r.WorkEnd)
	if err != nil {
		return fmt.Errorf("%w: workEnd must be in HH:MM format", ErrValidation)
	}
	if !workStart.IsBefore(workEnd) {
		return fmt.Errorf("%w: workStart must be before workEnd", ErrValidation)
	}

	if len(r.ServiceIDs) == 0 {
		return fmt.Errorf("%w: serviceIds is required", ErrValidation)
	}
	for _, id := range r.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceIds must be positive", ErrValidation)
		}
	}

	return nil
}

// ToDomain конвертирует валидный request в domain модель
func (r *ProfessionalRequest) ToDomain() *domain.Professional {
	workStart, _ := types.NewTimeStringFromString(r.WorkStart)
	workEnd, _ := types.NewTimeStringFromString(r.WorkEnd)

	return &domain.Professional{
		Name:       strings.TrimSpace(r.Name),
		Avatar:     r.Avatar,
		Photo:      r.Photo,
		Role:       r.Role,
		Phone:      r.Phone,
		Email:      r.Email,
		ServiceIDs: r.ServiceIDs,
		WorkDays:   r.WorkDays,
		WorkStart:  workStart,
		WorkEnd:    workEnd,
	}
}

// Response модели

// ProfessionalResponse ответ с данными профессионала
type ProfessionalResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Photo      *string   `json:"photo,omitempty"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	ServiceIDs []int64   `json:"serviceIds"`
	WorkDays   []int     `json:"workDays"`
	WorkStart  string    `json:"workStart"`
	WorkEnd    string    `json:"workEnd"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromDomainProfessional конвертирует domain модель в DTO
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	if p == nil {
		return nil
	}

	return &ProfessionalResponse{
		ID:         p.ID,
		Name:       p.Name,
		Avatar:     p.Avatar,
		Photo:      p.Photo,
		Role:       p.Role,
		Phone:      p.Phone,
		Email:      p.Email,
		ServiceIDs: p.ServiceIDs,
		WorkDays:   p.WorkDays,
		WorkStart:  p.WorkStart.String(),
		WorkEnd:    p.WorkEnd.String(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
