package blocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/BRB-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с блокировками времени барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOverlapping получает блокировки, пересекающиеся с интервалом [from, to).
// Опционально фильтрует по барберу. Блокировки с all_day=true выбираются
// по дате начала, так как их границы покрывают весь день.
func (r *Repository) GetOverlapping(ctx context.Context, businessID uuid.UUID, barberID *uuid.UUID, from, to time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"business_id",
		"barber_id",
		"start_time",
		"end_time",
		"all_day",
		"reason",
		"created_at",
	).
		From("barber_blocks").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *barberID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Block, 0)
	for rows.Next() {
		var block domain.Block
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.BusinessID,
			&block.BarberID,
			&block.StartTime,
			&block.EndTime,
			&block.AllDay,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverlapping - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time

		result = append(result, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
