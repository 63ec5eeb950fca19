package get_blocked_days

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
	msgInvalidProfessionalID = "id de profissional inválido"
	msgUnauthorized          = "usuário não autenticado"
	msgAccessDenied          = "sem permissão para gerenciar este profissional"
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

// Handle GET /api/v1/professionals/{id}/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	professionalID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || professionalID <= 0 {
		h.logger.Warn("GET /professionals/{id}/blocked-days - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	result, err := h.service.ListDays(r.Context(), user, professionalID)
	if err != nil {
		switch {
		case errors.Is(err, blockedService.ErrAccessDenied):
			h.logger.Warn("GET /professionals/{id}/blocked-days - Access denied: user_id=%d, professional_id=%d",
				user.ID, professionalID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, blockedService.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/blocked-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionals/{id}/blocked-days - Failed: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
