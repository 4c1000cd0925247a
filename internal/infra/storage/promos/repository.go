package promos

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/BRB-AvailabilityService/internal/domain"
	"github.com/m04kA/BRB-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/BRB-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с промо-правилами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промо-правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByBusiness получает промо-правила бизнеса в порядке хранения.
// Порядок (position ASC) определяет приоритет: первое подходящее
// правило выигрывает.
func (r *Repository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*domain.PromoRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"label",
		"days_of_week",
		"start_time",
		"end_time",
		"service_ids",
		"discount_type",
		"discount_value",
		"enabled",
		"position",
		"created_at",
		"updated_at",
	).
		From("promo_rules").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("position ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PromoRule, 0)
	for rows.Next() {
		var rule domain.PromoRule
		var days pq.Int64Array
		var serviceIDs pq.StringArray
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.BusinessID,
			&rule.Label,
			&days,
			&rule.StartTime,
			&rule.EndTime,
			&serviceIDs,
			&rule.DiscountType,
			&rule.DiscountValue,
			&rule.Enabled,
			&rule.Position,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}

		rule.DaysOfWeek = []int64(days)
		rule.ServiceIDs, err = parseServiceIDs(serviceIDs)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - rule %s: %v", ErrInvalidServiceID, rule.ID, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceForBusiness полностью заменяет набор промо-правил бизнеса.
// Позиция правила определяется его порядком в переданном слайсе.
// Вызывать только внутри транзакции.
func (r *Repository) ReplaceForBusiness(ctx context.Context, businessID uuid.UUID, rules []*domain.PromoRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("promo_rules").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForBusiness - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBusiness - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("promo_rules").
		Columns(
			"business_id",
			"label",
			"days_of_week",
			"start_time",
			"end_time",
			"service_ids",
			"discount_type",
			"discount_value",
			"enabled",
			"position",
		)

	for position, rule := range rules {
		serviceIDs := make(pq.StringArray, len(rule.ServiceIDs))
		for i, id := range rule.ServiceIDs {
			serviceIDs[i] = id.String()
		}

		insertBuilder = insertBuilder.Values(
			businessID,
			rule.Label,
			pq.Int64Array(rule.DaysOfWeek),
			rule.StartTime,
			rule.EndTime,
			serviceIDs,
			rule.DiscountType,
			rule.DiscountValue,
			rule.Enabled,
			position,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBusiness - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBusiness - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// parseServiceIDs конвертирует uuid[] из БД в слайс uuid.UUID
func parseServiceIDs(raw pq.StringArray) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
