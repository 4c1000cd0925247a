package durationstats

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/BRB-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со статистикой фактических длительностей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория статистики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает агрегат по услуге. barberID=nil означает агрегат по
// услуге без привязки к барберу.
func (r *Repository) Get(ctx context.Context, businessID, serviceID uuid.UUID, barberID *uuid.UUID) (*domain.DurationStat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"business_id",
		"service_id",
		"barber_id",
		"avg_actual_minutes",
		"sample_count",
		"updated_at",
	).
		From("service_duration_stats").
		Where(squirrel.Eq{"business_id": businessID, "service_id": serviceID})

	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *barberID})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Expr("barber_id IS NULL"))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var stat domain.DurationStat
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stat.BusinessID,
		&stat.ServiceID,
		&stat.BarberID,
		&stat.AvgActualMinutes,
		&stat.SampleCount,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan stat: %v", ErrScanRow, err)
	}

	stat.UpdatedAt = updatedAt.Time

	return &stat, nil
}

// recalcPerBarberQuery пересчитывает агрегаты по парам (услуга, барбер)
// из завершенных записей с заполненной фактической длительностью.
const recalcPerBarberQuery = `
INSERT INTO service_duration_stats (business_id, service_id, barber_id, avg_actual_minutes, sample_count, updated_at)
SELECT business_id, service_id, barber_id, AVG(actual_duration_minutes), COUNT(*), NOW()
FROM appointments
WHERE status = 'completed' AND actual_duration_minutes IS NOT NULL
GROUP BY business_id, service_id, barber_id
ON CONFLICT (business_id, service_id, barber_id) WHERE barber_id IS NOT NULL
DO UPDATE SET
	avg_actual_minutes = EXCLUDED.avg_actual_minutes,
	sample_count = EXCLUDED.sample_count,
	updated_at = EXCLUDED.updated_at
`

// recalcPerServiceQuery пересчитывает агрегаты по услугам без привязки
// к барберу. Отдельный частичный уникальный индекс по barber_id IS NULL.
const recalcPerServiceQuery = `
INSERT INTO service_duration_stats (business_id, service_id, barber_id, avg_actual_minutes, sample_count, updated_at)
SELECT business_id, service_id, NULL, AVG(actual_duration_minutes), COUNT(*), NOW()
FROM appointments
WHERE status = 'completed' AND actual_duration_minutes IS NOT NULL
GROUP BY business_id, service_id
ON CONFLICT (business_id, service_id) WHERE barber_id IS NULL
DO UPDATE SET
	avg_actual_minutes = EXCLUDED.avg_actual_minutes,
	sample_count = EXCLUDED.sample_count,
	updated_at = EXCLUDED.updated_at
`

// Recalculate пересчитывает все агрегаты из фактических длительностей.
// Запускается по расписанию фоновой задачей.
func (r *Repository) Recalculate(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, recalcPerBarberQuery); err != nil {
		return fmt.Errorf("%w: Recalculate - per barber aggregates: %v", ErrExecQuery, err)
	}

	if _, err := executor.ExecContext(ctx, recalcPerServiceQuery); err != nil {
		return fmt.Errorf("%w: Recalculate - per service aggregates: %v", ErrExecQuery, err)
	}

	return nil
}
