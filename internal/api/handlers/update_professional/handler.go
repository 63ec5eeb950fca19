package update_professional

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cortafila/CF-BookingService/internal/api/handlers"
	"github.com/cortafila/CF-BookingService/internal/api/middleware"
	professionalsService "github.com/cortafila/CF-BookingService/internal/service/professionals"
	"github.com/cortafila/CF-BookingService/internal/service/professionals/models"
)

const (
	msgInvalidProfessionalID = "id de profissional inválido"
	msgInvalidRequestBody    = "corpo da requisição inválido"
	msgAdminOnly             = "apenas administradores podem editar profissionais"
	msgProfessionalNotFound  = "profissional não encontrado"
	msgUnknownService        = "um ou mais serviços informados não existem"
	msgInvalidInput          = "dados do profissional inválidos"
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

// Handle PUT /api/v1/professionals/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok || !user.IsAdmin() {
		h.logger.Warn("PUT /professionals/{id} - Access denied for non-admin user")
		handlers.RespondError(w, http.StatusForbidden, msgAdminOnly)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /professionals/{id} - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req models.ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, professionalsService.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id} - Professional not found: id=%d", id)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, professionalsService.ErrUnknownService):
			h.logger.Warn("PUT /professionals/{id} - Unknown service: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, professionalsService.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /professionals/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id} - Professional updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
