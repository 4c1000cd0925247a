package promos

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promos.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promos.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("promos.repository: failed to scan row")

	// ErrInvalidServiceID возвращается при некорректном UUID услуги в правиле
	ErrInvalidServiceID = errors.New("promos.repository: invalid service id in rule")
)
