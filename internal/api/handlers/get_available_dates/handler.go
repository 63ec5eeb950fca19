package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	availableDates "github.com/cortafila/CF-BookingService/internal/usecase/get_available_dates"
)

const (
	msgInvalidServiceID = "parâmetro serviceId inválido"
	msgInvalidMonth     = "parâmetro month inválido, formato esperado YYYY-MM"
	msgServiceNotFound  = "serviço não encontrado"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/dates?serviceId=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(r.URL.Query().Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/dates - Invalid serviceId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	req := &availableDates.Request{ServiceID: serviceID}
	if month := r.URL.Query().Get("month"); month != "" {
		req.Month = &month
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availableDates.ErrServiceNotFound):
			h.logger.Warn("GET /availability/dates - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, availableDates.ErrInvalidInput):
			h.logger.Warn("GET /availability/dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /availability/dates - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
