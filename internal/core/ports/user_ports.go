package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/validation"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail and GetByID return (nil, nil) when no row matches.
	// includeSoftDeleted widens the lookup to soft-deleted rows; hard-deleted
	// rows no longer exist and are never reachable.
	GetByEmail(ctx context.Context, email string, includeSoftDeleted bool) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID, includeSoftDeleted bool) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (bool, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	Restore(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	HardDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserService interface {
	Create(ctx context.Context, payload validation.SignupPayload) error
	Authenticate(ctx context.Context, payload validation.SigninPayload) (string, error)
	Update(ctx context.Context, userID uuid.UUID, payload validation.UpdatePayload) error
	SoftDelete(ctx context.Context, userID uuid.UUID) error
	HardDelete(ctx context.Context, userID uuid.UUID) error
	Restore(ctx context.Context, payload validation.SigninPayload) error
}
