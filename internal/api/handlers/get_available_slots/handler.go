package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/domain"
	availableSlots "github.com/cortafila/CF-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "parâmetro professionalId inválido"
	msgInvalidServiceID      = "parâmetro serviceId inválido"
	msgInvalidDate           = "parâmetro date inválido, formato esperado YYYY-MM-DD"
	msgServiceNotFound       = "serviço não encontrado"
	msgProfessionalNotFound  = "profissional não encontrado"
	msgServiceNotOffered     = "profissional não realiza este serviço"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots?professionalId=&serviceId=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID, err := strconv.ParseInt(r.URL.Query().Get("professionalId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid professionalId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	serviceID, err := strconv.ParseInt(r.URL.Query().Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid serviceId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &availableSlots.Request{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, availableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability/slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, availableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /availability/slots - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, availableSlots.ErrServiceNotOffered):
			h.logger.Warn("GET /availability/slots - Service not offered: professional_id=%d, service_id=%d",
				professionalID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, availableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("GET /availability/slots - Failed: professional_id=%d, service_id=%d, error=%v",
				professionalID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
