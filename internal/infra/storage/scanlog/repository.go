package scanlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-TerminalService/internal/domain"
	"github.com/m04kA/SMC-TerminalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TerminalService/pkg/psqlbuilder"
)

// Repository журнал сканирований: только вставка и чтение.
// Операций update/delete нет - история неизменяема, исправления
// моделируются новыми событиями.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала сканирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет событие в журнал
func (r *Repository) Append(ctx context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("scan_events").
		Columns(
			"id",
			"booking_id",
			"container_id",
			"ts",
			"decoded_payload",
			"confirmed",
		).
		Values(
			event.ID,
			event.BookingID,
			event.ContainerID,
			event.Timestamp,
			event.DecodedPayload,
			event.Confirmed,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: id=%s", ErrDuplicateID, event.ID)
		}
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time

	return event, nil
}

// List возвращает все события, самые свежие первыми
func (r *Repository) List(ctx context.Context) ([]*domain.ScanEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"container_id",
		"ts",
		"decoded_payload",
		"confirmed",
		"created_at",
	).
		From("scan_events").
		OrderBy("ts DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.ScanEvent, 0)
	for rows.Next() {
		var event domain.ScanEvent
		var createdAt sql.NullTime

		err := rows.Scan(
			&event.ID,
			&event.BookingID,
			&event.ContainerID,
			&event.Timestamp,
			&event.DecodedPayload,
			&event.Confirmed,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
		}
		event.CreatedAt = createdAt.Time

		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return events, nil
}

// Count возвращает количество событий в журнале
// Используется для инициализации счётчика идентификаторов при старте
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("scan_events").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}
