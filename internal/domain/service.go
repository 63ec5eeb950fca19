package domain

import "time"

// ServiceType is a display grouping tag for services; it carries no
// scheduling logic
type ServiceType string

const (
	ServiceCorte       ServiceType = "corte"
	ServiceBarba       ServiceType = "barba"
	ServiceCombo       ServiceType = "combo"
	ServicePigmentacao ServiceType = "pigmentacao"
	ServiceHidratacao  ServiceType = "hidratacao"
)

// KnownServiceTypes enumerates the valid service type tags
var KnownServiceTypes = []ServiceType{
	ServiceCorte,
	ServiceBarba,
	ServiceCombo,
	ServicePigmentacao,
	ServiceHidratacao,
}

// IsValid returns true if the tag is one of the known service types
func (t ServiceType) IsValid() bool {
	for _, known := range KnownServiceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Service represents a bookable offering
type Service struct {
	ID              int64
	Name            string
	Type            ServiceType
	Price           float64
	DurationMinutes int
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
