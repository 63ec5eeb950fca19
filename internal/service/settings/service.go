package settings

import (
	"context"
	"fmt"

	"github.com/cortafila/CF-BookingService/internal/service/settings/models"
)

// Service сервис настроек бизнеса
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки бизнеса
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching business settings")

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update сохраняет настройки бизнеса.
// Смена гранулярности слотов не мигрирует существующие записи: запись,
// сделанная при другом интервале, остается видимой и занимает слоты по
// пересечению интервалов
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: saving business settings, monthsAhead=%d, interval=%d",
		req.ScheduleMonthsAhead, req.TimeSlotInterval)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.settingsRepo.Upsert(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: business settings saved")
	return models.FromDomainSettings(saved), nil
}
