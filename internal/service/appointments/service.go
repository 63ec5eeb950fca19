package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cortafila/CF-BookingService/internal/domain"
	appointmentRepo "github.com/cortafila/CF-BookingService/internal/infra/storage/appointment"
	"github.com/cortafila/CF-BookingService/internal/service/appointments/models"
	"github.com/cortafila/CF-BookingService/pkg/ptr"
)

// Service сервис агенды и жизненного цикла записей
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetAgenda получает записи с гибкой фильтрацией по дате, профессионалу и
// статусу. По умолчанию возвращает только активные записи
func (s *Service) GetAgenda(ctx context.Context, req *models.GetAgendaRequest) (*models.AppointmentListResponse, error) {
	logMsg := "GetAgenda: fetching appointments"
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.ProfessionalID != nil {
		logMsg += fmt.Sprintf(", professional=%d", *req.ProfessionalID)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAgenda: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAgenda: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAgenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAgenda: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetByClientPhone получает активные записи клиента по телефону.
// Телефон выступает естественным ключом клиентского портала
func (s *Service) GetByClientPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByClientPhone: fetching appointments for phone=%s", phone)

	if strings.TrimSpace(phone) == "" {
		s.logger.Warn("GetByClientPhone: empty phone")
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByClientPhone(ctx, phone, ptr.Ptr(domain.StatusScheduled))
	if err != nil {
		s.logger.Error("GetByClientPhone: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetByClientPhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByClientPhone: successfully fetched %d appointments for phone=%s", len(appointments), phone)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus переводит запись из scheduled в completed или cancelled.
// Завершение записи увеличивает счетчик визитов клиента в той же транзакции
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d, status=%s", id, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil || status == domain.StatusScheduled {
		s.logger.Warn("UpdateStatus: invalid target status=%s for appointment id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	switch status {
	case domain.StatusCompleted:
		if !apt.CanBeCompleted() {
			s.logger.Warn("UpdateStatus: appointment id=%d in status=%s cannot be completed", id, apt.Status)
			return nil, ErrCannotComplete
		}
	case domain.StatusCancelled:
		if !apt.CanBeCancelled() {
			s.logger.Warn("UpdateStatus: appointment id=%d in status=%s cannot be cancelled", id, apt.Status)
			return nil, ErrCannotCancel
		}
	}

	var paymentStatus *domain.PaymentStatus
	if status == domain.StatusCompleted && req.MarkPaid {
		paymentStatus = ptr.Ptr(domain.PaymentPaid)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.appointmentRepo.UpdateStatus(txCtx, id, status, paymentStatus); err != nil {
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if status == domain.StatusCompleted {
			if err := s.clientRepo.RegisterVisit(txCtx, apt.ClientID, apt.Date); err != nil {
				return fmt.Errorf("%w: UpdateStatus - register visit: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("UpdateStatus: transaction failed for appointment id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved to status=%s", id, status)
	return models.FromDomainAppointment(updated), nil
}

// Cancel отменяет запись с указанием причины
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: appointment id=%d", id)

	if len(req.CancellationReason) > domain.MaxReasonLength {
		s.logger.Warn("Cancel: reason too long for appointment id=%d", id)
		return nil, fmt.Errorf("%w: cancellation reason must be at most %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !apt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status=%s cannot be cancelled", id, apt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return models.FromDomainAppointment(cancelled), nil
}

// Delete физически удаляет запись. Деструктивный обходной путь для
// администратора, в нормальном флоу записи не удаляются
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}
