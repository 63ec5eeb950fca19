package block_day

import (
	"errors"
	"net/http"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/api/middleware"
	blockedService "github.com/cortafila/CF-BookingService/internal/service/blockeddays"
	"github.com/cortafila/CF-BookingService/internal/service/blockeddays/models"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgUnauthorized         = "usuário não autenticado"
	msgAccessDenied         = "sem permissão para gerenciar este profissional"
	msgProfessionalNotFound = "profissional não encontrado"
	msgDayAlreadyBlocked    = "dia já está bloqueado para este profissional"
	msgDayHasAppointments   = "dia possui agendamentos ativos, cancele-os antes de bloquear"
	msgInvalidInput         = "dados da blocklist inválidos"
)

type Handler struct {
	service BlockedDaysService
	logger  Logger
}

func NewHandler(service BlockedDaysService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.BlockDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BlockDay(r.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, blockedService.ErrDayHasAppointments):
			h.logger.Warn("POST /blocked-days - Day has appointments: professional_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayHasAppointments)

		case errors.Is(err, blockedService.ErrDayAlreadyBlocked):
			h.logger.Warn("POST /blocked-days - Day already blocked: professional_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDayAlreadyBlocked)

		case errors.Is(err, blockedService.ErrAccessDenied):
			h.logger.Warn("POST /blocked-days - Access denied: user_id=%d, professional_id=%d",
				user.ID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, blockedService.ErrProfessionalNotFound):
			h.logger.Warn("POST /blocked-days - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, blockedService.ErrInvalidInput):
			h.logger.Warn("POST /blocked-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-days - Failed: professional_id=%d, error=%v", req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-days - Day blocked: id=%d, professional_id=%d, date=%s",
		result.ID, req.ProfessionalID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
