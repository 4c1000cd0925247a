package catalog

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

// Repository репозиторий для работы с каталогом услуг и барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу бизнеса по ID
func (r *Repository) GetService(ctx context.Context, businessID, serviceID uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"duration_minutes",
		"price",
		"active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.BusinessID,
		&service.Name,
		&service.DurationMinutes,
		&service.Price,
		&service.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

// GetBarber получает барбера бизнеса по ID
func (r *Repository) GetBarber(ctx context.Context, businessID, barberID uuid.UUID) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"display_name",
		"active",
		"created_at",
		"updated_at",
	).
		From("barbers").
		Where(squirrel.Eq{"id": barberID, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarber - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID,
		&barber.BusinessID,
		&barber.DisplayName,
		&barber.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarber - scan barber: %v", ErrScanRow, err)
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return &barber, nil
}

// ListActiveBarbers получает список активных барберов бизнеса
func (r *Repository) ListActiveBarbers(ctx context.Context, businessID uuid.UUID) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"display_name",
		"active",
		"created_at",
		"updated_at",
	).
		From("barbers").
		Where(squirrel.Eq{"business_id": businessID, "active": true}).
		OrderBy("display_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var barber domain.Barber
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&barber.ID,
			&barber.BusinessID,
			&barber.DisplayName,
			&barber.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveBarbers - scan row: %v", ErrScanRow, err)
		}

		barber.CreatedAt = createdAt.Time
		barber.UpdatedAt = updatedAt.Time

		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}
