package create_appointment

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден или неактивен
	ErrBusinessNotFound = errors.New("business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно предварительной записи
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrBusinessClosed возвращается, когда бизнес закрыт в указанное время
	ErrBusinessClosed = errors.New("business is closed at this time")

	// ErrInvalidTimeSlot возвращается, когда время не выровнено по сетке слотов
	ErrInvalidTimeSlot = errors.New("time is not aligned to the slot grid")

	// ErrTooLateToBook возвращается при попытке записаться на прошедшее время
	ErrTooLateToBook = errors.New("too late to book this time")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMalformedInterval возвращается при испорченном занятом интервале
	// (запись с неположительной длительностью, блокировка с концом не
	// позже начала)
	ErrMalformedInterval = errors.New("malformed busy interval")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
