package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/ports"
)

// In-memory repository fakes mirroring the SQL semantics: explicit
// soft-delete visibility, rows-affected results, cascade on user removal.

type fakeClock struct {
	t time.Time
}

func (c fakeClock) Now() time.Time { return c.t }

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
	logs  *fakeLogRepo
}

func newFakeUserRepo(logs *fakeLogRepo) *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*domain.User{}, logs: logs}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string, includeSoftDeleted bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && (includeSoftDeleted || u.DeletedAt == nil) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID, includeSoftDeleted bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || (!includeSoftDeleted && u.DeletedAt != nil) {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[user.ID]
	if !ok || u.DeletedAt != nil {
		return false, nil
	}
	for _, other := range r.users {
		if other.ID != user.ID && other.Email == user.Email {
			return false, domain.ErrEmailTaken
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return true, nil
}

func (r *fakeUserRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return false, nil
	}
	deletedAt := at
	u.DeletedAt = &deletedAt
	u.UpdatedAt = at
	return true, nil
}

func (r *fakeUserRepo) Restore(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	u.DeletedAt = nil
	u.UpdatedAt = at
	return true, nil
}

func (r *fakeUserRepo) HardDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	if _, ok := r.users[id]; !ok {
		r.mu.Unlock()
		return false, nil
	}
	delete(r.users, id)
	r.mu.Unlock()
	if r.logs != nil {
		r.logs.HardDeleteAll(ctx, id)
	}
	return true, nil
}

type fakeLogRepo struct {
	mu     sync.Mutex
	nextID int64
	logs   []*domain.Log
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{nextID: 1}
}

func (r *fakeLogRepo) Create(ctx context.Context, log *domain.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	log.ID = r.nextID
	log.CreatedAt = now
	log.UpdatedAt = now
	r.nextID++
	clone := *log
	r.logs = append(r.logs, &clone)
	return nil
}

func (r *fakeLogRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Log
	for _, l := range r.logs {
		if l.UserID == userID && l.DeletedAt == nil {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) ListByField(ctx context.Context, userID uuid.UUID, field ports.LogField, value string) ([]domain.Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Log
	for _, l := range r.logs {
		if l.UserID != userID || l.DeletedAt != nil {
			continue
		}
		var fieldValue string
		switch field {
		case ports.LogFieldSenderApplication:
			fieldValue = l.SenderApplication
		case ports.LogFieldEnvironment:
			fieldValue = l.Environment
		case ports.LogFieldLevel:
			fieldValue = l.Level
		}
		if fieldValue == value {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) SoftDelete(ctx context.Context, userID uuid.UUID, logID int64, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.UserID == userID && l.ID == logID && l.DeletedAt == nil {
			deletedAt := at
			l.DeletedAt = &deletedAt
			l.UpdatedAt = at
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLogRepo) SoftDeleteAll(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.logs {
		if l.UserID == userID && l.DeletedAt == nil {
			deletedAt := at
			l.DeletedAt = &deletedAt
			l.UpdatedAt = at
			n++
		}
	}
	return n, nil
}

func (r *fakeLogRepo) Restore(ctx context.Context, userID uuid.UUID, logID int64, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.UserID == userID && l.ID == logID {
			l.DeletedAt = nil
			l.UpdatedAt = at
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLogRepo) RestoreAll(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.logs {
		if l.UserID == userID && l.DeletedAt != nil {
			l.DeletedAt = nil
			l.UpdatedAt = at
			n++
		}
	}
	return n, nil
}

func (r *fakeLogRepo) HardDelete(ctx context.Context, userID uuid.UUID, logID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.logs {
		if l.UserID == userID && l.ID == logID {
			r.logs = append(r.logs[:i], r.logs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLogRepo) HardDeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*domain.Log
	var n int64
	for _, l := range r.logs {
		if l.UserID == userID {
			n++
			continue
		}
		kept = append(kept, l)
	}
	r.logs = kept
	return n, nil
}
