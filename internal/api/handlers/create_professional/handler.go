package create_professional

import (
	"errors"
	"net/http"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/api/middleware"
	professionalsService "github.com/cortafila/CF-BookingService/internal/service/professionals"
	"github.com/cortafila/CF-BookingService/internal/service/professionals/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgAdminOnly          = "apenas administradores podem cadastrar profissionais"
	msgUnknownService     = "um ou mais serviços informados não existem"
	msgInvalidInput       = "dados do profissional inválidos"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok || !user.IsAdmin() {
		h.logger.Warn("POST /professionals - Access denied for non-admin user")
		handlers.RespondError(w, http.StatusForbidden, msgAdminOnly)
		return
	}

	var req models.ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, professionalsService.ErrUnknownService):
			h.logger.Warn("POST /professionals - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, professionalsService.ErrInvalidInput):
			h.logger.Warn("POST /professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /professionals - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals - Professional created: id=%d, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
