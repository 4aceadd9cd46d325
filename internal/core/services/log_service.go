package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/ports"
	"github.com/logbook/api/internal/validation"
)

// LogService owns the log lifecycle. Every operation re-verifies the owning
// user is still active before touching the store: a log with a soft- or
// hard-deleted owner is unreachable.
type LogService struct {
	logs  ports.LogRepository
	users ports.UserRepository
	clock domain.Clock
}

func NewLogService(logs ports.LogRepository, users ports.UserRepository, clock domain.Clock) ports.LogService {
	return &LogService{
		logs:  logs,
		users: users,
		clock: clock,
	}
}

func (s *LogService) requireActiveUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID, false)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *LogService) Create(ctx context.Context, userID uuid.UUID, payload validation.LogPayload) (*domain.Log, error) {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return nil, err
	}
	if !payload.Validate().OK() {
		return nil, domain.ErrInvalidData
	}

	log := &domain.Log{
		UserID:            userID,
		Level:             payload.Level,
		Description:       payload.Description,
		SenderApplication: payload.SenderApplication,
		SendDate:          payload.SendDate,
		Environment:       payload.Environment,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}
	return log, nil
}

func (s *LogService) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Log, error) {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

func (s *LogService) ListByField(ctx context.Context, userID uuid.UUID, field ports.LogField, value string) ([]domain.Log, error) {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByField(ctx, userID, field, value)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

func (s *LogService) SoftDelete(ctx context.Context, userID uuid.UUID, logID int64) error {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return err
	}
	ok, err := s.logs.SoftDelete(ctx, userID, logID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *LogService) SoftDeleteAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return err
	}
	n, err := s.logs.SoftDeleteAll(ctx, userID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to delete logs: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *LogService) Restore(ctx context.Context, userID uuid.UUID, logID int64) error {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return err
	}
	ok, err := s.logs.Restore(ctx, userID, logID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to restore log: %w", err)
	}
	if !ok {
		// Never existed or already hard-deleted.
		return domain.ErrNotFound
	}
	return nil
}

func (s *LogService) RestoreAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return err
	}
	n, err := s.logs.RestoreAll(ctx, userID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to restore logs: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *LogService) HardDelete(ctx context.Context, userID uuid.UUID, logID int64) error {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return err
	}
	ok, err := s.logs.HardDelete(ctx, userID, logID)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *LogService) HardDeleteAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.requireActiveUser(ctx, userID); err != nil {
		return err
	}
	n, err := s.logs.HardDeleteAll(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete logs: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
