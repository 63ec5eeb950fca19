package update_settings

import (
	"errors"
	"net/http"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/api/middleware"
	settingsService "github.com/cortafila/CF-BookingService/internal/service/settings"
	"github.com/cortafila/CF-BookingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgAdminOnly          = "apenas administradores podem alterar as configurações"
	msgInvalidSettings    = "configurações inválidas"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok || !user.IsAdmin() {
		h.logger.Warn("PUT /settings - Access denied for non-admin user")
		handlers.RespondError(w, http.StatusForbidden, msgAdminOnly)
		return
	}

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /settings - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated by user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
