package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/ports"
)

const uniqueViolation = "23505"

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) ports.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, user.ID, user.Name, user.Email, user.Password).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, includeSoftDeleted bool) (*domain.User, error) {
	query := `
		SELECT id, name, email, password, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1
	`
	if !includeSoftDeleted {
		query += ` AND deleted_at IS NULL`
	}
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID, includeSoftDeleted bool) (*domain.User, error) {
	query := `
		SELECT id, name, email, password, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1
	`
	if !includeSoftDeleted {
		query += ` AND deleted_at IS NULL`
	}
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) (bool, error) {
	// The deleted_at guard makes the read-modify-write safe against a
	// concurrent soft-delete: the update simply matches no row.
	query := `
		UPDATE users
		SET name = $2, email = $3, password = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Password, user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return false, domain.ErrEmailTaken
		}
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	return rowsAffected(res)
}

func (r *userRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE users
		SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to soft-delete user: %w", err)
	}
	return rowsAffected(res)
}

func (r *userRepository) Restore(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE users
		SET deleted_at = NULL, updated_at = $2
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to restore user: %w", err)
	}
	return rowsAffected(res)
}

func (r *userRepository) HardDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	// Owned logs are removed by the FK cascade.
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to hard-delete user: %w", err)
	}
	return rowsAffected(res)
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
