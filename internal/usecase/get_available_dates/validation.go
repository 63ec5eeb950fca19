package get_available_dates

import (
	"fmt"
	"time"
)

// monthFormat формат опционального фильтра по месяцу
const monthFormat = "2006-01"

// validateRequest валидирует входные данные и разбирает фильтр по месяцу
func validateRequest(req *Request) (*time.Time, error) {
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Month == nil {
		return nil, nil
	}

	month, err := time.Parse(monthFormat, *req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", ErrInvalidInput)
	}

	return &month, nil
}
