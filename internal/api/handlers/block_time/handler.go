package block_time

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
	msgInvalidInput         = "dados do bloqueio de horário inválidos"
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

// Handle POST /api/v1/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.BlockTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BlockTime(r.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, blockedService.ErrAccessDenied):
			h.logger.Warn("POST /blocked-times - Access denied: user_id=%d, professional_id=%d",
				user.ID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, blockedService.ErrProfessionalNotFound):
			h.logger.Warn("POST /blocked-times - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, blockedService.ErrInvalidInput):
			h.logger.Warn("POST /blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-times - Failed: professional_id=%d, error=%v", req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-times - Time blocked: id=%d, professional_id=%d, date=%s, time=%s",
		result.ID, req.ProfessionalID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
