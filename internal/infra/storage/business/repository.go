package business

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/BRB-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бизнесами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var businessColumns = []string{
	"id",
	"slug",
	"name",
	"timezone",
	"operating_hours",
	"buffer_minutes",
	"slot_step_minutes",
	"smart_duration_enabled",
	"advance_booking_days",
	"manager_ids",
	"active",
	"created_at",
	"updated_at",
}

// GetBySlug получает бизнес по публичному slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBusiness(executor.QueryRowContext(ctx, query, args...), "GetBySlug")
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBusiness(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// UpdateSettings обновляет настройки вычисления слотов у бизнеса
func (r *Repository) UpdateSettings(ctx context.Context, business *domain.Business) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	hoursJSON, err := json.Marshal(business.OperatingHours)
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - marshal hours: %v", ErrMarshalHours, err)
	}

	query, args, err := psqlbuilder.Update("businesses").
		Set("timezone", business.Timezone).
		Set("operating_hours", hoursJSON).
		Set("buffer_minutes", business.BufferMinutes).
		Set("slot_step_minutes", business.SlotStepMinutes).
		Set("smart_duration_enabled", business.SmartDurationEnabled).
		Set("advance_booking_days", business.AdvanceBookingDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": business.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

// scanBusiness сканирует строку результата в domain.Business
func (r *Repository) scanBusiness(row *sql.Row, method string) (*domain.Business, error) {
	var business domain.Business
	var hoursJSON []byte
	var managerIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&business.ID,
		&business.Slug,
		&business.Name,
		&business.Timezone,
		&hoursJSON,
		&business.BufferMinutes,
		&business.SlotStepMinutes,
		&business.SmartDurationEnabled,
		&business.AdvanceBookingDays,
		&managerIDs,
		&business.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan business: %v", ErrScanRow, method, err)
	}

	if err := json.Unmarshal(hoursJSON, &business.OperatingHours); err != nil {
		return nil, fmt.Errorf("%w: %s - unmarshal hours: %v", ErrUnmarshalHours, method, err)
	}

	business.ManagerIDs = []int64(managerIDs)
	business.CreatedAt = createdAt.Time
	business.UpdatedAt = updatedAt.Time

	return &business, nil
}
