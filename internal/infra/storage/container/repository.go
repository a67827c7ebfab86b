package container

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TerminalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TerminalService/pkg/types"
)

// Repository репозиторий для работы с контейнерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контейнеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var containerColumns = []string{
	"id",
	"arrival_date",
	"arrival_time",
	"arrived",
	"scheduled",
	"appointment_date",
	"appointment_hour",
	"enterprise",
	"port",
	"terminal",
	"lat",
	"lng",
	"created_at",
	"updated_at",
}

// GetByID получает контейнер по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Container, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(containerColumns...).
		From("containers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	container, err := scanContainer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%s", ErrContainerNotFound, id)
		}
		return nil, err
	}

	return container, nil
}

// List получает контейнеры с опциональной фильтрацией
// Сортировка: дата прибытия по возрастанию, затем идентификатор
func (r *Repository) List(ctx context.Context, filter domain.ContainersFilter) ([]*domain.Container, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(containerColumns...).
		From("containers").
		OrderBy("arrival_date ASC", "id ASC")

	if filter.Enterprise != nil {
		builder = builder.Where(squirrel.Eq{"enterprise": *filter.Enterprise})
	}
	if filter.Arrived != nil {
		builder = builder.Where(squirrel.Eq{"arrived": *filter.Arrived})
	}
	if filter.Scheduled != nil {
		builder = builder.Where(squirrel.Eq{"scheduled": *filter.Scheduled})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	containers := make([]*domain.Container, 0)
	for rows.Next() {
		container, err := scanContainer(rows)
		if err != nil {
			return nil, err
		}
		containers = append(containers, container)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return containers, nil
}

// SetAppointment помечает контейнер записанным на слот
// Устанавливает scheduled = true и оба appointment-поля одной операцией:
// инвариант "scheduled влечет заполненные поля" не нарушается даже на мгновение
func (r *Repository) SetAppointment(ctx context.Context, id string, date time.Time, hour types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("containers").
		Set("scheduled", true).
		Set("appointment_date", date).
		Set("appointment_hour", hour).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAppointment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAppointment - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAppointment - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrContainerNotFound, id)
	}

	return nil
}

// ClearAppointment снимает запись с контейнера (при отмене бронирования)
func (r *Repository) ClearAppointment(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("containers").
		Set("scheduled", false).
		Set("appointment_date", nil).
		Set("appointment_hour", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ClearAppointment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ClearAppointment - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ClearAppointment - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrContainerNotFound, id)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContainer(row rowScanner) (*domain.Container, error) {
	var container domain.Container
	var appointmentDate sql.NullTime
	var appointmentHour sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&container.ID,
		&container.ArrivalDate,
		&container.ArrivalTime,
		&container.Arrived,
		&container.Scheduled,
		&appointmentDate,
		&appointmentHour,
		&container.Enterprise,
		&container.Port,
		&container.Terminal,
		&container.Lat,
		&container.Lng,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	if appointmentDate.Valid {
		container.AppointmentDate = &appointmentDate.Time
	}
	if appointmentHour.Valid {
		var hour types.TimeString
		if err := hour.Scan(appointmentHour.String); err != nil {
			return nil, fmt.Errorf("%w: appointment_hour: %v", ErrScanRow, err)
		}
		container.AppointmentHour = &hour
	}
	container.CreatedAt = createdAt.Time
	container.UpdatedAt = updatedAt.Time

	return &container, nil
}
