package unblock_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/api/middleware"
	blockedService "github.com/cortafila/CF-BookingService/internal/service/blockeddays"
)

const (
	msgInvalidBlockedDayID = "id de bloqueio inválido"
	msgUnauthorized        = "usuário não autenticado"
	msgAccessDenied        = "sem permissão para gerenciar este profissional"
	msgBlockedDayNotFound  = "bloqueio de dia não encontrado"
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

// Handle DELETE /api/v1/blocked-days/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /blocked-days/{id} - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBlockedDayID)
		return
	}

	if err := h.service.UnblockDay(r.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, blockedService.ErrBlockedDayNotFound):
			h.logger.Warn("DELETE /blocked-days/{id} - Blocked day not found: id=%d", id)
			handlers.RespondNotFound(w, msgBlockedDayNotFound)

		case errors.Is(err, blockedService.ErrAccessDenied):
			h.logger.Warn("DELETE /blocked-days/{id} - Access denied: user_id=%d, id=%d", user.ID, id)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("DELETE /blocked-days/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-days/{id} - Day unblocked: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
