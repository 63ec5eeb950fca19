package get_available_slots

import (
	"fmt"

	"github.com/cortafila/CF-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateProfessionalOffersService проверяет, что профессионал выполняет услугу
func validateProfessionalOffersService(prof *domain.Professional, serviceID int64) error {
	if !prof.OffersService(serviceID) {
		return ErrServiceNotOffered
	}
	return nil
}
