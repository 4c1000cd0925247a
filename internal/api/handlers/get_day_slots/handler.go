package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/get_day_slots"
)

const (
	msgInvalidRequest     = "некорректные параметры запроса"
	msgBusinessNotFound   = "бизнес не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgBarberNotFound     = "барбер не найден"
	msgInvalidDate        = "дата в прошлом"
	msgDateTooFarInFuture = "дата превышает окно предварительной записи"
)

// Handler обработчик получения слотов на день
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

// Handle обрабатывает GET /api/v1/public/{slug}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	req, err := ToUseCaseRequest(slug, r.URL.Query())
	if err != nil {
		h.logger.Warn("Handle: invalid request for slug=%s: %v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_day_slots.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)
		case errors.Is(err, get_day_slots.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, get_day_slots.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)
		case errors.Is(err, get_day_slots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, get_day_slots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFarInFuture)
		case errors.Is(err, get_day_slots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("Handle: usecase error for slug=%s: %v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
