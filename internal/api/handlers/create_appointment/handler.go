package create_appointment

import (
	"errors"
	"net/http"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	createAppointment "github.com/cortafila/CF-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDateOrTime    = "data ou horário inválido, formatos esperados YYYY-MM-DD e HH:MM"
	msgServiceNotFound      = "serviço não encontrado"
	msgProfessionalNotFound = "profissional não encontrado"
	msgServiceNotOffered    = "profissional não realiza este serviço"
	msgInvalidDate          = "data fora do período de agendamento"
	msgSlotUnavailable      = "horário indisponível para agendamento"
	msgSlotConflict         = "horário acabou de ser reservado, escolha outro"
	msgInvalidInput         = "dados do agendamento inválidos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: professional_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotOffered):
			h.logger.Warn("POST /appointments - Service not offered: professional_id=%d, service_id=%d",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: professional_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotUnavailable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, professional_id=%d, date=%s, time=%s",
		result.Appointment.ID, req.ProfessionalID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
