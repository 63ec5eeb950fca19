package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	appointmentsService "github.com/cortafila/CF-BookingService/internal/service/appointments"
)

const msgPhoneRequired = "parâmetro phone é obrigatório"

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

// Handle GET /api/v1/clients/appointments?phone=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	result, err := h.service.GetByClientPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /clients/appointments - Missing phone")
			handlers.RespondBadRequest(w, msgPhoneRequired)

		default:
			h.logger.Error("GET /clients/appointments - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
