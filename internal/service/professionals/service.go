package professionals

import (
	"context"
	"errors"
	"fmt"

	professionalRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/professional"
	"github.com/cortafila/CF-BookingService/internal/service/professionals/models"
)

// Service сервис управления профессионалами
type Service struct {
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса профессионалов
func NewService(
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

// Create создает профессионала из валидированного DTO
func (s *Service) Create(ctx context.Context, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: creating professional name=%s", req.Name)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.validateServicesExist(ctx, req.ServiceIDs); err != nil {
		return nil, err
	}

	created, err := s.professionalRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created professional id=%d", created.ID)
	return models.FromDomainProfessional(created), nil
}

// Update обновляет профессионала из валидированного DTO
func (s *Service) Update(ctx context.Context, id int64, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Update: updating professional id=%d", id)

	if id <= 0 {
		s.logger.Warn("Update: invalid id=%d", id)
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.validateServicesExist(ctx, req.ServiceIDs); err != nil {
		return nil, err
	}

	updated, err := s.professionalRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Update: professional id=%d not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Update: repository error for professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated professional id=%d", id)
	return models.FromDomainProfessional(updated), nil
}

// validateServicesExist проверяет, что все указанные услуги существуют
func (s *Service) validateServicesExist(ctx context.Context, serviceIDs []int64) error {
	services, err := s.serviceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		s.logger.Error("validateServicesExist: repository error: %v", err)
		return fmt.Errorf("%w: validateServicesExist - repository error: %v", ErrInternal, err)
	}

	known := make(map[int64]struct{}, len(services))
	for _, svc := range services {
		known[svc.ID] = struct{}{}
	}

	for _, id := range serviceIDs {
		if _, ok := known[id]; !ok {
			s.logger.Warn("validateServicesExist: service id=%d does not exist", id)
			return fmt.Errorf("%w: service id=%d", ErrUnknownService, id)
		}
	}

	return nil
}
