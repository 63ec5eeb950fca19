package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/cortafila/CF-BookingService/internal/domain"
	appointmentRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/appointment"
	blockedRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/blocked"
	clientRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/client"
	professionalRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/professional"
	serviceRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/service"
	"github.com/cortafila/CF-BookingService/internal/notifications/whatsapp"
	"github.com/cortafila/CF-BookingService/pkg/ptr"
)

// UseCase use case для создания записи клиентом
type UseCase struct {
	appointmentRepo  AppointmentRepository
	clientRepo       ClientRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	blockedRepo      BlockedRepository
	settingsRepo     SettingsRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	blockedRepo BlockedRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		clientRepo:       clientRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		blockedRepo:      blockedRepo,
		settingsRepo:     settingsRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи.
// Повторная проверка пересечений выполняется в сериализуемой транзакции по
// текущему набору записей, а не по снапшоту, который видел клиент: между
// показом слотов и коммитом слот мог быть занят. Страховка на уровне БД -
// частичный уникальный индекс (professional_id, date, start_time) для
// status='scheduled'.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: professional=%d, service=%d, date=%s, time=%s, phone=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.ClientPhone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем профессионала
	prof, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Профессионал должен выполнять услугу
	if !prof.OffersService(req.ServiceID) {
		uc.logger.Warn("CreateAppointment: professional id=%d does not offer service id=%d",
			req.ProfessionalID, req.ServiceID)
		return nil, ErrServiceNotOffered
	}

	// 5. Настройки: окно бронирования, гранулярность, неактивные дни
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 6. Дата в окне бронирования и не в прошлом
	if err := validateDate(req.Date, now, settings.ScheduleMonthsAhead); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 7. День должен быть рабочим: не закрыт для бизнеса и в графике профессионала
	if settings.IsInactiveDay(req.Date.Weekday()) {
		uc.logger.Warn("CreateAppointment: %s is an inactive business day", req.Date.Weekday())
		return nil, fmt.Errorf("%w: business is closed on this weekday", ErrSlotUnavailable)
	}

	if !prof.WorksOn(req.Date.Weekday()) {
		uc.logger.Warn("CreateAppointment: professional id=%d does not work on %s",
			req.ProfessionalID, req.Date.Weekday())
		return nil, fmt.Errorf("%w: professional does not work on this weekday", ErrSlotUnavailable)
	}

	// 8. Время по сетке, внутри рабочих часов и не в прошлом
	if err := validateSlot(req.StartTime, prof, settings.TimeSlotInterval); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	if err := validateNotPastSlot(req.StartTime, req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: slot time validation failed: %v", err)
		return nil, err
	}

	// 9. День не заблокирован профессионалом
	_, err = uc.blockedRepo.GetDayForProfessional(ctx, req.ProfessionalID, req.Date)
	if err == nil {
		uc.logger.Warn("CreateAppointment: day %s is blocked for professional id=%d",
			req.Date.Format(domain.DateFormat), req.ProfessionalID)
		return nil, fmt.Errorf("%w: day is blocked", ErrSlotUnavailable)
	}
	if !errors.Is(err, blockedRepo.ErrBlockedDayNotFound) {
		uc.logger.Error("CreateAppointment: failed to check blocked day: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked day: %v", ErrInternal, err)
	}

	// 10. Слот не заблокирован точечно
	blockedTimes, err := uc.blockedRepo.GetTimesForDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}
	for _, bt := range blockedTimes {
		if bt.Time == req.StartTime {
			uc.logger.Warn("CreateAppointment: time %s is blocked for professional id=%d",
				req.StartTime, req.ProfessionalID)
			return nil, fmt.Errorf("%w: time is blocked", ErrSlotUnavailable)
		}
	}

	var result *domain.Appointment

	// 11. Коммит в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 11.1. Активные записи профессионала на дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, domain.AgendaFilter{
			Date:            ptr.Ptr(req.Date),
			ProfessionalID:  ptr.Ptr(req.ProfessionalID),
			IncludeInactive: false,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		// 11.2. Пересечение с учетом длительности услуги
		if hasOverlap(req.StartTime, service.DurationMinutes, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s %s is already taken for professional id=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.ProfessionalID)
			return ErrSlotConflict
		}

		// 11.3. Клиент по телефону, при первом визите создается неявно
		client, err := uc.clientRepo.GetByPhone(txCtx, req.ClientPhone)
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			client, err = uc.clientRepo.Create(txCtx, &domain.Client{
				Name:  strings.TrimSpace(req.ClientName),
				Phone: req.ClientPhone,
				Email: req.ClientEmail,
			})
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to create client: %v", err)
				return fmt.Errorf("%w: failed to create client: %w", ErrInternal, err)
			}
			uc.logger.Info("CreateAppointment: created client id=%d for phone=%s", client.ID, req.ClientPhone)
		} else if err != nil {
			uc.logger.Error("CreateAppointment: failed to get client by phone: %v", err)
			return fmt.Errorf("%w: failed to get client: %w", ErrInternal, err)
		}

		// 11.4. Создаем запись с денормализацией данных услуги и участников.
		// История переживает последующие правки справочников
		apt := &domain.Appointment{
			ClientID:    client.ID,
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientPhone: req.ClientPhone,

			ProfessionalID:   prof.ID,
			ProfessionalName: prof.Name,

			ServiceID:       service.ID,
			ServiceName:     service.Name,
			ServiceType:     service.Type,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,

			Date:      req.Date,
			StartTime: req.StartTime,

			Status:        domain.StatusScheduled,
			PaymentStatus: domain.PaymentPending,
			Products:      req.Products,
		}

		created, err := uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: unique index rejected slot %s %s for professional id=%d",
					req.Date.Format(domain.DateFormat), req.StartTime, req.ProfessionalID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации, переживший все повторы DoSerializable, -
		// это проигрыш гонки за слот, а не внутренняя ошибка
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serialization conflict for professional=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for professional=%d, date=%s, time=%s",
		result.ID, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 12. Подтверждение для WhatsApp
	message := whatsapp.FillTemplate(settings.WhatsAppMessage, whatsapp.MessageData{
		ClientName:       result.ClientName,
		ServiceName:      result.ServiceName,
		ProfessionalName: result.ProfessionalName,
		Date:             result.Date,
		StartTime:        result.StartTime,
	})

	return &Response{
		Appointment:     result,
		WhatsAppMessage: message,
		WhatsAppLink:    whatsapp.Link(settings.BusinessPhone, message),
	}, nil
}

// serializationFailure код ошибки Postgres при конфликте сериализуемых транзакций
const serializationFailure = "40001"

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == serializationFailure
}
