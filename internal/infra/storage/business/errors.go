package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business.repository: business not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("business.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("business.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("business.repository: failed to scan row")

	// ErrMarshalHours возвращается при ошибке сериализации расписания работы
	ErrMarshalHours = errors.New("business.repository: failed to marshal operating hours")

	// ErrUnmarshalHours возвращается при ошибке десериализации расписания работы
	ErrUnmarshalHours = errors.New("business.repository: failed to unmarshal operating hours")
)
