package blockeddays

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortafila/CF-BookingService/internal/domain"
	blockedRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/blocked"
	professionalRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/professional"
	"github.com/cortafila/CF-BookingService/internal/integrations/authservice"
	"github.com/cortafila/CF-BookingService/internal/service/blockeddays/models"
	"github.com/cortafila/CF-BookingService/pkg/ptr"
)

// Service сервис блокировок расписания.
// Администратор управляет блокировками любого профессионала, сотрудник -
// только своими
type Service struct {
	blockedRepo      BlockedRepository
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockedRepo BlockedRepository,
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		blockedRepo:      blockedRepo,
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// BlockDay блокирует день целиком. День с активными записями заблокировать
// нельзя: сначала записи нужно отменить или перенести. Проверка конфликтов и
// вставка выполняются в одной транзакции, чтобы параллельное создание записи
// не проскочило между ними
func (s *Service) BlockDay(ctx context.Context, user *authservice.User, req *models.BlockDayRequest) (*models.BlockedDayResponse, error) {
	s.logger.Info("BlockDay: user=%d, professional=%d, date=%s", user.ID, req.ProfessionalID, req.Date)

	date, err := req.Validate()
	if err != nil {
		s.logger.Warn("BlockDay: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !user.CanManageProfessional(req.ProfessionalID) {
		s.logger.Warn("BlockDay: user=%d cannot manage professional=%d", user.ID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	if _, err := s.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("BlockDay: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("BlockDay: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: BlockDay - repository error: %v", ErrInternal, err)
	}

	var created *domain.BlockedDay

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointments, err := s.appointmentRepo.GetWithFilter(txCtx, domain.AgendaFilter{
			Date:            ptr.Ptr(date),
			ProfessionalID:  ptr.Ptr(req.ProfessionalID),
			IncludeInactive: false,
		})
		if err != nil {
			return fmt.Errorf("%w: BlockDay - get appointments: %v", ErrInternal, err)
		}

		if len(appointments) > 0 {
			s.logger.Warn("BlockDay: %d scheduled appointments exist for professional=%d on %s",
				len(appointments), req.ProfessionalID, req.Date)
			return ErrDayHasAppointments
		}

		created, err = s.blockedRepo.CreateDay(txCtx, &domain.BlockedDay{
			ProfessionalID: req.ProfessionalID,
			Date:           date,
			Reason:         req.Reason,
		})
		if err != nil {
			if errors.Is(err, blockedRepo.ErrDayAlreadyBlocked) {
				return ErrDayAlreadyBlocked
			}
			return fmt.Errorf("%w: BlockDay - create: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDayHasAppointments) && !errors.Is(err, ErrDayAlreadyBlocked) {
			s.logger.Error("BlockDay: transaction failed: %v", err)
		}
		return nil, err
	}

	s.logger.Info("BlockDay: created blocked day id=%d for professional=%d", created.ID, req.ProfessionalID)
	return models.FromDomainBlockedDay(created), nil
}

// UnblockDay снимает блокировку дня
func (s *Service) UnblockDay(ctx context.Context, user *authservice.User, id int64) error {
	s.logger.Info("UnblockDay: user=%d, blocked day id=%d", user.ID, id)

	day, err := s.blockedRepo.GetDayByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedDayNotFound) {
			s.logger.Warn("UnblockDay: blocked day id=%d not found", id)
			return ErrBlockedDayNotFound
		}
		s.logger.Error("UnblockDay: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UnblockDay - repository error: %v", ErrInternal, err)
	}

	if !user.CanManageProfessional(day.ProfessionalID) {
		s.logger.Warn("UnblockDay: user=%d cannot manage professional=%d", user.ID, day.ProfessionalID)
		return ErrAccessDenied
	}

	if err := s.blockedRepo.DeleteDay(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedDayNotFound) {
			return ErrBlockedDayNotFound
		}
		s.logger.Error("UnblockDay: delete failed for id=%d: %v", id, err)
		return fmt.Errorf("%w: UnblockDay - delete: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockDay: deleted blocked day id=%d", id)
	return nil
}

// ListDays возвращает блокировки дней профессионала
func (s *Service) ListDays(ctx context.Context, user *authservice.User, professionalID int64) (*models.BlockedDayListResponse, error) {
	s.logger.Info("ListDays: user=%d, professional=%d", user.ID, professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}

	if !user.CanManageProfessional(professionalID) {
		s.logger.Warn("ListDays: user=%d cannot manage professional=%d", user.ID, professionalID)
		return nil, ErrAccessDenied
	}

	days, err := s.blockedRepo.ListDaysByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("ListDays: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListDays - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListDays: fetched %d blocked days for professional=%d", len(days), professionalID)
	return models.FromDomainBlockedDayList(days), nil
}

// BlockTime блокирует один слот. Точечная блокировка не проверяет записи:
// занятый слот и так недоступен, блокировка лишь закрывает его на будущее
func (s *Service) BlockTime(ctx context.Context, user *authservice.User, req *models.BlockTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("BlockTime: user=%d, professional=%d, date=%s, time=%s",
		user.ID, req.ProfessionalID, req.Date, req.Time)

	date, slot, err := req.Validate()
	if err != nil {
		s.logger.Warn("BlockTime: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !user.CanManageProfessional(req.ProfessionalID) {
		s.logger.Warn("BlockTime: user=%d cannot manage professional=%d", user.ID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	if _, err := s.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("BlockTime: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("BlockTime: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: BlockTime - repository error: %v", ErrInternal, err)
	}

	created, err := s.blockedRepo.CreateTime(ctx, &domain.BlockedTime{
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		Time:           slot,
		Reason:         req.Reason,
	})
	if err != nil {
		s.logger.Error("BlockTime: create failed: %v", err)
		return nil, fmt.Errorf("%w: BlockTime - create: %v", ErrInternal, err)
	}

	s.logger.Info("BlockTime: created blocked time id=%d for professional=%d", created.ID, req.ProfessionalID)
	return models.FromDomainBlockedTime(created), nil
}

// UnblockTime снимает блокировку слота
func (s *Service) UnblockTime(ctx context.Context, user *authservice.User, id int64) error {
	s.logger.Info("UnblockTime: user=%d, blocked time id=%d", user.ID, id)

	bt, err := s.blockedRepo.GetTimeByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedTimeNotFound) {
			s.logger.Warn("UnblockTime: blocked time id=%d not found", id)
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("UnblockTime: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UnblockTime - repository error: %v", ErrInternal, err)
	}

	if !user.CanManageProfessional(bt.ProfessionalID) {
		s.logger.Warn("UnblockTime: user=%d cannot manage professional=%d", user.ID, bt.ProfessionalID)
		return ErrAccessDenied
	}

	if err := s.blockedRepo.DeleteTime(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedTimeNotFound) {
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("UnblockTime: delete failed for id=%d: %v", id, err)
		return fmt.Errorf("%w: UnblockTime - delete: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockTime: deleted blocked time id=%d", id)
	return nil
}
