package get_available_professionals

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/domain"
	availableProfessionals "github.com/cortafila/CF-BookingService/internal/usecase/get_available_professionals"
)

const (
	msgInvalidServiceID = "parâmetro serviceId inválido"
	msgInvalidDate      = "parâmetro date inválido, formato esperado YYYY-MM-DD"
	msgServiceNotFound  = "serviço não encontrado"
)

type Handler struct {
	useCase GetAvailableProfessionalsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableProfessionalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/professionals?serviceId=&date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(r.URL.Query().Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/professionals - Invalid serviceId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability/professionals - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &availableProfessionals.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, availableProfessionals.ErrServiceNotFound):
			h.logger.Warn("GET /availability/professionals - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, availableProfessionals.ErrInvalidInput):
			h.logger.Warn("GET /availability/professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("GET /availability/professionals - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
