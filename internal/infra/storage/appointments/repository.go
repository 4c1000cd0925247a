package appointments

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

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var appointmentColumns = []string{
	"id",
	"business_id",
	"barber_id",
	"service_id",
	"client_name",
	"client_phone",
	"scheduled_at",
	"duration_minutes",
	"actual_duration_minutes",
	"status",
	"service_name",
	"service_price",
	"notes",
	"created_at",
	"updated_at",
}

// GetForRange получает блокирующие записи бизнеса за интервал времени.
// Опционально фильтрует по барберу. Интервал сравнивается с учетом
// длительности записи: запись попадает в выборку, если пересекается
// с [from, to).
//
// Если в контексте есть активная транзакция, строки блокируются
// через FOR UPDATE (для проверки конфликтов при создании записи).
func (r *Repository) GetForRange(ctx context.Context, businessID uuid.UUID, barberID *uuid.UUID, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blockingStatuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blockingStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"status": blockingStatuses}).
		Where(squirrel.Lt{"scheduled_at": to}).
		Where(squirrel.Expr("scheduled_at + (duration_minutes || ' minutes')::interval > ?", from)).
		OrderBy("scheduled_at ASC")

	// Фильтрация по барберу, если указан
	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *barberID})
	}

	// В транзакции блокируем строки от конкурентных записей
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Create создает новую запись клиента
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"business_id",
			"barber_id",
			"service_id",
			"client_name",
			"client_phone",
			"scheduled_at",
			"duration_minutes",
			"status",
			"service_name",
			"service_price",
			"notes",
		).
		Values(
			appointment.BusinessID,
			appointment.BarberID,
			appointment.ServiceID,
			appointment.ClientName,
			appointment.ClientPhone,
			appointment.ScheduledAt,
			appointment.DurationMinutes,
			appointment.Status,
			appointment.ServiceName,
			appointment.ServicePrice,
			appointment.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appointment domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appointment.ID,
			&appointment.BusinessID,
			&appointment.BarberID,
			&appointment.ServiceID,
			&appointment.ClientName,
			&appointment.ClientPhone,
			&appointment.ScheduledAt,
			&appointment.DurationMinutes,
			&appointment.ActualDurationMinutes,
			&appointment.Status,
			&appointment.ServiceName,
			&appointment.ServicePrice,
			&appointment.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appointment.CreatedAt = createdAt.Time
		appointment.UpdatedAt = updatedAt.Time

		result = append(result, &appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
