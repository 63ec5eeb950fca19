package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortafila/CF-BookingService/internal/domain"
	blockedRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/blocked"
	professionalRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/professional"
	serviceRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/service"
	"github.com/cortafila/CF-BookingService/pkg/ptr"
)

// UseCase use case для получения слотов на дату для пары профессионал/услуга
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	blockedRepo      BlockedRepository
	settingsRepo     SettingsRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	blockedRepo BlockedRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		blockedRepo:      blockedRepo,
		settingsRepo:     settingsRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем профессионала
	prof, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Профессионал должен выполнять услугу
	if err := validateProfessionalOffersService(prof, req.ServiceID); err != nil {
		uc.logger.Warn("GetAvailableSlots: professional id=%d does not offer service id=%d",
			req.ProfessionalID, req.ServiceID)
		return nil, err
	}

	emptyResponse := &Response{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Slots:          []Slot{},
	}

	// 5. Не рабочий день недели - слотов нет, это валидный пустой результат
	if !prof.WorksOn(req.Date.Weekday()) {
		uc.logger.Info("GetAvailableSlots: professional id=%d does not work on %s",
			req.ProfessionalID, req.Date.Weekday())
		return emptyResponse, nil
	}

	// 6. Проверяем блокировку дня
	_, err = uc.blockedRepo.GetDayForProfessional(ctx, req.ProfessionalID, req.Date)
	if err == nil {
		uc.logger.Info("GetAvailableSlots: day %s is blocked for professional id=%d",
			req.Date.Format(domain.DateFormat), req.ProfessionalID)
		return emptyResponse, nil
	}
	if !errors.Is(err, blockedRepo.ErrBlockedDayNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to check blocked day: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked day: %v", ErrInternal, err)
	}

	// 7. Получаем настройки бизнеса (гранулярность слотов)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 8. Точечные блокировки слотов на эту дату
	blockedTimes, err := uc.blockedRepo.GetTimesForDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	// 9. Активные записи профессионала на эту дату
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AgendaFilter{
		Date:            ptr.Ptr(req.Date),
		ProfessionalID:  ptr.Ptr(req.ProfessionalID),
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 10. Генерируем сетку и размечаем доступность.
	// Слот недоступен, если он в прошлом, заблокирован точечно или его
	// интервал с учетом длительности услуги пересекается с активной записью
	grid := generateSlotGrid(prof.WorkStart, prof.WorkEnd, settings.TimeSlotInterval)

	slots := make([]Slot, len(grid))
	for i, start := range grid {
		available := !isPastSlot(start, req.Date, now) &&
			!isBlockedTime(start, blockedTimes) &&
			!overlapsAppointment(start, service.DurationMinutes, appointments)

		slots[i] = Slot{
			StartTime: start,
			Available: available,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, service=%d, date=%s",
		len(slots), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Slots:          slots,
	}, nil
}
