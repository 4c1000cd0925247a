package get_promo_rules

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BRB-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/BRB-AvailabilityService/internal/service/promorules"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgUnauthorized      = "требуется аутентификация"
	msgBusinessNotFound  = "бизнес не найден"
	msgAccessDenied      = "доступ запрещен"
)

// Handler обработчик получения промо-правил бизнеса
type Handler struct {
	service PromoService
	logger  Logger
}

// NewHandler создает новый обработчик
func NewHandler(service PromoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/businesses/{businessId}/promo-rules
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

	resp, err := h.service.List(r.Context(), businessID, userID)
	if err != nil {
		switch {
		case errors.Is(err, promorules.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)
		case errors.Is(err, promorules.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("Handle: service error for business=%s: %v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
