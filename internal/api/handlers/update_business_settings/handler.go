package update_business_settings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BRB-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/BRB-AvailabilityService/internal/service/settings"
	"github.com/m04kA/BRB-AvailabilityService/internal/service/settings/models"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidSettings   = "некорректные настройки"
	msgUnauthorized      = "требуется аутентификация"
	msgBusinessNotFound  = "бизнес не найден"
	msgAccessDenied      = "доступ запрещен"
)

// Handler обработчик обновления настроек бизнеса
type Handler struct {
	service SettingsService
	logger  Logger
}

// NewHandler создает новый обработчик
func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает PUT /api/v1/businesses/{businessId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := uuid.Parse(vars["businessId"])
	if err != nil {
		h.logger.Warn("Handle: invalid business ID %q: %v", vars["businessId"], err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Handle: invalid request body for business=%s: %v", businessID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	resp, err := h.service.Update(r.Context(), businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)
		case errors.Is(err, settings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, settings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSettings)
		default:
			h.logger.Error("Handle: service error for business=%s: %v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
