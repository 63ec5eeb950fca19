package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/api/middleware"
	appointmentsService "github.com/cortafila/CF-BookingService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "id de agendamento inválido"
	msgAppointmentNotFound  = "agendamento não encontrado"
	msgAdminOnly            = "apenas administradores podem excluir agendamentos"
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

// Handle DELETE /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok || !user.IsAdmin() {
		h.logger.Warn("DELETE /appointments/{id} - Access denied for non-admin user")
		handlers.RespondError(w, http.StatusForbidden, msgAdminOnly)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /appointments/{id} - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
