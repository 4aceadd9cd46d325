package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/ports"
	"github.com/logbook/api/internal/validation"
)

// UserService owns the user lifecycle: signup, authentication, profile
// update, soft-delete, restore and hard-delete.
type UserService struct {
	users  ports.UserRepository
	creds  ports.CredentialService
	tokens ports.TokenService
	clock  domain.Clock
}

func NewUserService(users ports.UserRepository, creds ports.CredentialService, tokens ports.TokenService, clock domain.Clock) ports.UserService {
	return &UserService{
		users:  users,
		creds:  creds,
		tokens: tokens,
		clock:  clock,
	}
}

func (s *UserService) Create(ctx context.Context, payload validation.SignupPayload) error {
	if !payload.Validate().OK() {
		return domain.ErrInvalidData
	}

	// The uniqueness check matches the literal email regardless of
	// soft-delete state: a soft-deleted account still owns its email so
	// that restore can find it.
	existing, err := s.users.GetByEmail(ctx, payload.Email, true)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return domain.ErrEmailTaken
	}

	digest, err := s.creds.Hash(payload.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:       uuid.New(),
		Name:     payload.Name,
		Email:    payload.Email,
		Password: digest,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index closes the race between the check above and
		// the insert.
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *UserService) Authenticate(ctx context.Context, payload validation.SigninPayload) (string, error) {
	if !payload.Validate().OK() {
		return "", domain.ErrInvalidData
	}

	user, err := s.users.GetByEmail(ctx, payload.Email, false)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}

	if !s.creds.Compare(payload.Password, user.Password) {
		return "", domain.ErrIncorrectPassword
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func (s *UserService) Update(ctx context.Context, userID uuid.UUID, payload validation.UpdatePayload) error {
	if !payload.Validate().OK() {
		return domain.ErrInvalidData
	}

	user, err := s.users.GetByID(ctx, userID, false)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if payload.Name != nil {
		user.Name = *payload.Name
	}
	if payload.Email != nil {
		user.Email = *payload.Email
	}
	if payload.ChangesPassword() {
		if !s.creds.Compare(*payload.OldPassword, user.Password) {
			return domain.ErrPasswordMismatch
		}
		digest, err := s.creds.Hash(*payload.NewPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = digest
	}
	user.UpdatedAt = s.clock.Now()

	ok, err := s.users.Update(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if !ok {
		// Soft-deleted between the read and the write.
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *UserService) SoftDelete(ctx context.Context, userID uuid.UUID) error {
	ok, err := s.users.SoftDelete(ctx, userID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *UserService) HardDelete(ctx context.Context, userID uuid.UUID) error {
	// The row is removed in any soft-delete state; owned logs go with it.
	ok, err := s.users.HardDelete(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *UserService) Restore(ctx context.Context, payload validation.SigninPayload) error {
	if !payload.Validate().OK() {
		return domain.ErrInvalidData
	}

	// Restore must find soft-deleted rows; a hard-deleted account has no
	// row left and reports not found.
	user, err := s.users.GetByEmail(ctx, payload.Email, true)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if !s.creds.Compare(payload.Password, user.Password) {
		return domain.ErrIncorrectPassword
	}

	if _, err := s.users.Restore(ctx, user.ID, s.clock.Now()); err != nil {
		return fmt.Errorf("failed to restore user: %w", err)
	}
	return nil
}
