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
	ErrValidation = errors.New("invalid blocked day payload")
)

// Request модели

// BlockDayRequest запрос на блокировку дня
type BlockDayRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"` // "2025-10-15"
	Reason         *string `json:"reason,omitempty"`
}

// Validate проверяет инварианты и разбирает дату
func (r *BlockDayRequest) Validate() (time.Time, error) {
	if r.ProfessionalID <= 0 {
		return time.Time{}, fmt.Errorf("%w: professionalId must be positive", ErrValidation)
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrValidation)
	}

	if err := validateReason(r.Reason); err != nil {
		return time.Time{}, err
	}

	return date, nil
}

// BlockTimeRequest запрос на блокировку одного слота
type BlockTimeRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	Date           string  `json:"date"` // "2025-10-15"
	Time           string  `json:"time"` // "10:00"
	Reason         *string `json:"reason,omitempty"`
}

// Validate проверяет инварианты и разбирает дату и время
func (r *BlockTimeRequest) Validate() (time.Time, types.TimeString, error) {
	if r.ProfessionalID <= 0 {
		return time.Time{}, "", fmt.Errorf("%w: professionalId must be positive", ErrValidation)
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrValidation)
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: time must be in HH:MM format", ErrValidation)
	}

	if err := validateReason(r.Reason); err != nil {
		return time.Time{}, "", err
	}

	return date, slot, nil
}

func validateReason(reason *string) error {
	if reason != nil && len(*reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrValidation, domain.MaxReasonLength)
	}
	if reason != nil && strings.TrimSpace(*reason) == "" {
		return fmt.Errorf("%w: reason must not be blank", ErrValidation)
	}
	return nil
}

// Response модели

// BlockedDayResponse ответ с данными блокировки дня
type BlockedDayResponse struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professionalId"`
	Date           string    `json:"date"`
	Reason         *string   `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BlockedDayListResponse ответ со списком блокировок дней
type BlockedDayListResponse struct {
	BlockedDays []BlockedDayResponse `json:"blockedDays"`
}

// BlockedTimeResponse ответ с данными блокировки слота
type BlockedTimeResponse struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professionalId"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Reason         *string   `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Методы конвертации

// FromDomainBlockedDay конвертирует domain модель в DTO
func FromDomainBlockedDay(d *domain.BlockedDay) *BlockedDayResponse {
	if d == nil {
		return nil
	}

	return &BlockedDayResponse{
		ID:             d.ID,
		ProfessionalID: d.ProfessionalID,
		Date:           d.Date.Format(domain.DateFormat),
		Reason:         d.Reason,
		CreatedAt:      d.CreatedAt,
	}
}

// FromDomainBlockedDayList конвертирует список domain моделей в DTO
func FromDomainBlockedDayList(days []*domain.BlockedDay) *BlockedDayListResponse {
	result := &BlockedDayListResponse{
		BlockedDays: make([]BlockedDayResponse, 0, len(days)),
	}

	for _, d := range days {
		if resp := FromDomainBlockedDay(d); resp != nil {
			result.BlockedDays = append(result.BlockedDays, *resp)
		}
	}

	return result
}

// FromDomainBlockedTime конвертирует domain модель в DTO
func FromDomainBlockedTime(t *domain.BlockedTime) *BlockedTimeResponse {
	if t == nil {
		return nil
	}

	return &BlockedTimeResponse{
		ID:             t.ID,
		ProfessionalID: t.ProfessionalID,
		Date:           t.Date.Format(domain.DateFormat),
		Time:           t.Time.String(),
		Reason:         t.Reason,
		CreatedAt:      t.CreatedAt,
	}
}
