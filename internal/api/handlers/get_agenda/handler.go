package get_agenda

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/domain"
	appointmentsService "github.com/cortafila/CF-BookingService/internal/service/appointments"
	"github.com/cortafila/CF-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidDate           = "parâmetro date inválido, formato esperado YYYY-MM-DD"
	msgInvalidProfessionalID = "parâmetro professionalId inválido"
	msgInvalidFilter         = "filtro de agenda inválido"
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

// Handle GET /api/v1/appointments?date=&professionalId=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetAgendaRequest{}
	query := r.URL.Query()

	if rawDate := query.Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if rawID := query.Get("professionalId"); rawID != "" {
		professionalID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid professionalId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)
			return
		}
		req.ProfessionalID = &professionalID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetAgenda(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
