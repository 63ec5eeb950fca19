package get_available_professionals

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortafila/CF-BookingService/internal/domain"
	serviceRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/service"
)

// UseCase use case для получения профессионалов, доступных для услуги на дату
type UseCase struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	blockedRepo      BlockedRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	blockedRepo BlockedRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		blockedRepo:      blockedRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных профессионалов.
// Пустой список валиден и означает "на эту дату никто не доступен",
// подмены на произвольного профессионала не происходит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableProfessionals: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableProfessionals: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга должна существовать
	if _, err := uc.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableProfessionals: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableProfessionals: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Все профессионалы в порядке отображения
	professionals, err := uc.professionalRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableProfessionals: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
	}

	// 4. Блокировки дней на запрошенную дату
	blockedDays, err := uc.blockedRepo.GetDaysInRange(ctx, req.Date, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableProfessionals: failed to get blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked days: %v", ErrInternal, err)
	}

	blockedIDs := make(map[int64]struct{}, len(blockedDays))
	for _, day := range blockedDays {
		blockedIDs[day.ProfessionalID] = struct{}{}
	}

	// 5. Фильтруем: выполняет услугу, работает в этот день недели, не заблокирован
	weekday := req.Date.Weekday()
	available := make([]Professional, 0)
	for _, prof := range professionals {
		if !prof.OffersService(req.ServiceID) {
			continue
		}
		if !prof.WorksOn(weekday) {
			continue
		}
		if _, blocked := blockedIDs[prof.ID]; blocked {
			continue
		}

		available = append(available, Professional{
			ID:     prof.ID,
			Name:   prof.Name,
			Avatar: prof.Avatar,
			Photo:  prof.Photo,
			Role:   prof.Role,
		})
	}

	uc.logger.Info("GetAvailableProfessionals: %d professionals available for service=%d, date=%s",
		len(available), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Professionals: available,
	}, nil
}
