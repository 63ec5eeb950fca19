package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	appointmentsService "github.com/cortafila/CF-BookingService/internal/service/appointments"
	"github.com/cortafila/CF-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "id de agendamento inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgAppointmentNotFound  = "agendamento não encontrado"
	msgInvalidStatus        = "status inválido, valores aceitos: completed, cancelled"
	msgCannotComplete       = "agendamento não pode ser concluído"
	msgCannotCancel         = "agendamento não pode ser cancelado"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: id=%d, status=%s", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointmentsService.ErrCannotComplete):
			h.logger.Warn("PATCH /appointments/{id}/status - Cannot complete: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotComplete)

		case errors.Is(err, appointmentsService.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/status - Cannot cancel: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Appointment updated: id=%d, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
