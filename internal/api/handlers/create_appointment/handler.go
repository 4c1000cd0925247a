package create_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BRB-AvailabilityService/internal/usecase/create_appointment"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgBusinessNotFound   = "бизнес не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgBarberNotFound     = "барбер не найден"
	msgInvalidDate        = "дата в прошлом"
	msgDateTooFarInFuture = "дата превышает окно предварительной записи"
	msgBusinessClosed     = "бизнес закрыт в указанное время"
	msgInvalidTimeSlot    = "время не выровнено по сетке слотов"
	msgTooLateToBook      = "время уже прошло"
	msgSlotNotAvailable   = "слот уже занят"
)

// Handler обработчик создания записи
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

// Handle обрабатывает POST /api/v1/public/{slug}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Handle: invalid request body for slug=%s: %v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slug))
	if err != nil {
		switch {
		case errors.Is(err, create_appointment.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)
		case errors.Is(err, create_appointment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, create_appointment.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)
		case errors.Is(err, create_appointment.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, create_appointment.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFarInFuture)
		case errors.Is(err, create_appointment.ErrBusinessClosed):
			handlers.RespondBadRequest(w, msgBusinessClosed)
		case errors.Is(err, create_appointment.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		case errors.Is(err, create_appointment.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)
		case errors.Is(err, create_appointment.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)
		case errors.Is(err, create_appointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("Handle: usecase error for slug=%s: %v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
