package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/validation"
)

// LogField names the columns a log query may filter on. Values outside
// this set are rejected before reaching the store.
type LogField string

const (
	LogFieldSenderApplication LogField = "senderApplication"
	LogFieldEnvironment       LogField = "environment"
	LogFieldLevel             LogField = "level"
)

type LogRepository interface {
	Create(ctx context.Context, log *domain.Log) error
	// ListByUser and ListByField return active logs only, ascending by id.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Log, error)
	ListByField(ctx context.Context, userID uuid.UUID, field LogField, value string) ([]domain.Log, error)
	SoftDelete(ctx context.Context, userID uuid.UUID, logID int64, at time.Time) (bool, error)
	SoftDeleteAll(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	// Restore lookups include soft-deleted rows.
	Restore(ctx context.Context, userID uuid.UUID, logID int64, at time.Time) (bool, error)
	RestoreAll(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	HardDelete(ctx context.Context, userID uuid.UUID, logID int64) (bool, error)
	HardDeleteAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

type LogService interface {
	Create(ctx context.Context, userID uuid.UUID, payload validation.LogPayload) (*domain.Log, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Log, error)
	ListByField(ctx context.Context, userID uuid.UUID, field LogField, value string) ([]domain.Log, error)
	SoftDelete(ctx context.Context, userID uuid.UUID, logID int64) error
	SoftDeleteAll(ctx context.Context, userID uuid.UUID) error
	Restore(ctx context.Context, userID uuid.UUID, logID int64) error
	RestoreAll(ctx context.Context, userID uuid.UUID) error
	HardDelete(ctx context.Context, userID uuid.UUID, logID int64) error
	HardDeleteAll(ctx context.Context, userID uuid.UUID) error
}
