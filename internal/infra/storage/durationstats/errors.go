package durationstats

import "errors"

var (
	// ErrStatNotFound возвращается, когда агрегат по услуге/барберу не найден
	ErrStatNotFound = errors.New("durationstats.repository: stat not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("durationstats.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("durationstats.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("durationstats.repository: failed to scan row")
)
