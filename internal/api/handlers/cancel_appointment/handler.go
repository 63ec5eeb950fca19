package cancel_appointment

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
	msgCannotCancel         = "agendamento não pode ser cancelado"
	msgInvalidReason        = "motivo de cancelamento inválido"
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

// Handle PATCH /api/v1/appointments/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid reason: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
