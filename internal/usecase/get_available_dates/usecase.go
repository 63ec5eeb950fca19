package get_available_dates

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/service"
)

// UseCase use case для получения дат, доступных для записи на услугу
type UseCase struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	blockedRepo      BlockedRepository
	settingsRepo     SettingsRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	blockedRepo BlockedRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		blockedRepo:      blockedRepo,
		settingsRepo:     settingsRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: service=%d", req.ServiceID)

	// 1. Валидация входных данных и разбор фильтра по месяцу
	monthFilter, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Услуга должна существовать
	if _, err := uc.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableDates: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Настройки определяют окно бронирования и неактивные дни недели
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Все профессионалы, фильтрация по услуге внутри перебора дат
	professionals, err := uc.professionalRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
	}

	// 5. Блокировки дней на все окно одним запросом
	today := truncateToDay(now)
	windowEnd := today.AddDate(0, settings.ScheduleMonthsAhead, 0)

	blockedDays, err := uc.blockedRepo.GetDaysInRange(ctx, today, windowEnd)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked days: %v", ErrInternal, err)
	}

	// 6. Перебираем окно и применяем правила доступности
	dates := computeAvailableDates(req.ServiceID, professionals, blockedDays, settings, now, monthFilter)

	uc.logger.Info("GetAvailableDates: %d dates available for service=%d", len(dates), req.ServiceID)

	return &Response{
		ServiceID: req.ServiceID,
		Dates:     dates,
	}, nil
}
