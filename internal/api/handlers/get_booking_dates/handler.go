package get_booking_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/get_booking_dates"
)

const (
	msgInvalidRequest   = "некорректные параметры запроса"
	msgBusinessNotFound = "бизнес не найден"
)

// Handler обработчик получения дат, доступных для записи
type Handler struct {
	useCase UseCase
	logger  Logger
}

// NewHandler создает новый обработчик
func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/public/{slug}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	req := &get_booking_dates.Request{Slug: slug}
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || days < 1 {
			h.logger.Warn("Handle: invalid days parameter %q for slug=%s", raw, slug)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		req.Days = &days
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_booking_dates.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)
		case errors.Is(err, get_booking_dates.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("Handle: usecase error for slug=%s: %v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
