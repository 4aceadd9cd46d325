package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/ports"
)

type logRepository struct {
	db *sql.DB
}

func NewLogRepository(db *sql.DB) ports.LogRepository {
	return &logRepository{db: db}
}

// logFieldColumns whitelists the filterable columns. Filter values are
// always bound as parameters; the field name never reaches the SQL text
// unchecked.
var logFieldColumns = map[ports.LogField]string{
	ports.LogFieldSenderApplication: "sender_application",
	ports.LogFieldEnvironment:       "environment",
	ports.LogFieldLevel:             "level",
}

func (r *logRepository) Create(ctx context.Context, log *domain.Log) error {
	query := `
		INSERT INTO logs (user_id, level, description, sender_application, send_date, environment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		log.UserID, log.Level, log.Description, log.SenderApplication, log.SendDate, log.Environment,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert log: %w", err)
	}
	return nil
}

func (r *logRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Log, error) {
	query := `
		SELECT id, user_id, level, description, sender_application, send_date, environment,
		       created_at, updated_at, deleted_at
		FROM logs
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	return r.scanLogs(rows)
}

func (r *logRepository) ListByField(ctx context.Context, userID uuid.UUID, field ports.LogField, value string) ([]domain.Log, error) {
	column, ok := logFieldColumns[field]
	if !ok {
		return nil, fmt.Errorf("unknown log field %q", field)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, level, description, sender_application, send_date, environment,
		       created_at, updated_at, deleted_at
		FROM logs
		WHERE user_id = $1 AND %s = $2 AND deleted_at IS NULL
		ORDER BY id ASC
	`, column)
	rows, err := r.db.QueryContext(ctx, query, userID, value)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs by %s: %w", field, err)
	}
	defer rows.Close()

	return r.scanLogs(rows)
}

func (r *logRepository) scanLogs(rows *sql.Rows) ([]domain.Log, error) {
	var logs []domain.Log
	for rows.Next() {
		var log domain.Log
		err := rows.Scan(&log.ID, &log.UserID, &log.Level, &log.Description,
			&log.SenderApplication, &log.SendDate, &log.Environment,
			&log.CreatedAt, &log.UpdatedAt, &log.DeletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}
	return logs, nil
}

func (r *logRepository) SoftDelete(ctx context.Context, userID uuid.UUID, logID int64, at time.Time) (bool, error) {
	query := `
		UPDATE logs
		SET deleted_at = $3, updated_at = $3
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, userID, logID, at)
	if err != nil {
		return false, fmt.Errorf("failed to soft-delete log: %w", err)
	}
	return rowsAffected(res)
}

func (r *logRepository) SoftDeleteAll(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	query := `
		UPDATE logs
		SET deleted_at = $2, updated_at = $2
		WHERE user_id = $1 AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, userID, at)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete logs: %w", err)
	}
	return res.RowsAffected()
}

func (r *logRepository) Restore(ctx context.Context, userID uuid.UUID, logID int64, at time.Time) (bool, error) {
	// No deleted_at predicate: the lookup includes soft-deleted rows and
	// restoring an active log is a harmless no-op.
	query := `
		UPDATE logs
		SET deleted_at = NULL, updated_at = $3
		WHERE user_id = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, logID, at)
	if err != nil {
		return false, fmt.Errorf("failed to restore log: %w", err)
	}
	return rowsAffected(res)
}

func (r *logRepository) RestoreAll(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	query := `
		UPDATE logs
		SET deleted_at = NULL, updated_at = $2
		WHERE user_id = $1 AND deleted_at IS NOT NULL
	`
	res, err := r.db.ExecContext(ctx, query, userID, at)
	if err != nil {
		return 0, fmt.Errorf("failed to restore logs: %w", err)
	}
	return res.RowsAffected()
}

func (r *logRepository) HardDelete(ctx context.Context, userID uuid.UUID, logID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM logs WHERE user_id = $1 AND id = $2`, userID, logID)
	if err != nil {
		return false, fmt.Errorf("failed to hard-delete log: %w", err)
	}
	return rowsAffected(res)
}

func (r *logRepository) HardDeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM logs WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to hard-delete logs: %w", err)
	}
	return res.RowsAffected()
}
