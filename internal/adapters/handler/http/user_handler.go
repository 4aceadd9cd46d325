package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/ports"
	"github.com/logbook/api/internal/validation"
	"go.uber.org/zap"
)

type UserHandler struct {
	users  ports.UserService
	logs   ports.LogService
	logger *zap.Logger
}

func NewUserHandler(users ports.UserService, logs ports.LogService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logs:   logs,
		logger: logger,
	}
}

func userIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func (h *UserHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("unexpected failure", zap.String("op", op), zap.Error(err))
	respondInternalError(w)
}

// Signup godoc
// @Summary      Creates a new user account
// @Tags         user
// @Accept       json
// @Success      201
// @Failure      406
// @Failure      409
// @Router       /user/signup [post]
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload validation.SignupPayload
	if err := decodeStrict(r, &payload); err != nil {
		respondMessage(w, http.StatusNotAcceptable, "Invalid data")
		return
	}

	if err := h.users.Create(r.Context(), payload); err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			respondMessage(w, http.StatusNotAcceptable, "Invalid data")
			return
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			respondMessage(w, http.StatusConflict, "User email already exists")
			return
		}
		h.internalError(w, "user signup", err)
		return
	}

	respondMessage(w, http.StatusCreated, "User created successfully")
}

// Signin godoc
// @Summary      Authenticates a user and issues a bearer token
// @Tags         user
// @Accept       json
// @Success      200
// @Failure      400
// @Failure      401
// @Failure      406
// @Router       /user/signin [post]
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var payload validation.SigninPayload
	if err := decodeStrict(r, &payload); err != nil {
		respondMessage(w, http.StatusNotAcceptable, "Data values are not valid")
		return
	}

	token, err := h.users.Authenticate(r.Context(), payload)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			respondMessage(w, http.StatusNotAcceptable, "Data values are not valid")
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			respondMessage(w, http.StatusBadRequest, "User not found")
			return
		}
		if errors.Is(err, domain.ErrIncorrectPassword) {
			respondMessage(w, http.StatusUnauthorized, "Incorrect password")
			return
		}
		h.internalError(w, "user signin", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var payload validation.UpdatePayload
	if err := decodeStrict(r, &payload); err != nil {
		respondMessage(w, http.StatusNotAcceptable, "Invalid data")
		return
	}

	if err := h.users.Update(r.Context(), userID, payload); err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			respondMessage(w, http.StatusNotAcceptable, "Invalid data")
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			respondMessage(w, http.StatusNotAcceptable, "User not found")
			return
		}
		if errors.Is(err, domain.ErrPasswordMismatch) {
			respondMessage(w, http.StatusPreconditionFailed, "Password does not match")
			return
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			respondMessage(w, http.StatusConflict, "User email already exists")
			return
		}
		h.internalError(w, "user update", err)
		return
	}

	respondMessage(w, http.StatusOK, "Updated successfully")
}

func (h *UserHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.users.SoftDelete(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondEmpty(w, http.StatusNoContent)
			return
		}
		h.internalError(w, "user soft-delete", err)
		return
	}

	respondMessage(w, http.StatusOK, "Deleted successfully")
}

func (h *UserHandler) HardDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.users.HardDelete(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondEmpty(w, http.StatusNoContent)
			return
		}
		h.internalError(w, "user hard-delete", err)
		return
	}

	respondMessage(w, http.StatusOK, "Deleted successfully, this action cannot be undone")
}

// Restore re-authenticates by credentials rather than by bearer token: a
// soft-deleted account cannot hold a token that points at an active user.
func (h *UserHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var payload validation.SigninPayload
	if err := decodeStrict(r, &payload); err != nil {
		respondMessage(w, http.StatusNotAcceptable, "Data values are not valid")
		return
	}

	if err := h.users.Restore(r.Context(), payload); err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			respondMessage(w, http.StatusNotAcceptable, "Data values are not valid")
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			respondMessage(w, http.StatusBadRequest, "User not found")
			return
		}
		if errors.Is(err, domain.ErrIncorrectPassword) {
			respondMessage(w, http.StatusUnauthorized, "Incorrect password")
			return
		}
		h.internalError(w, "user restore", err)
		return
	}

	respondMessage(w, http.StatusOK, "User restored successfully")
}

type userLogsResponse struct {
	Total int          `json:"total"`
	Logs  []domain.Log `json:"Logs"`
}

// GetLogs returns all active logs owned by the authenticated user with a
// total count, ascending by id. No logs is the empty-signal, not an empty
// list payload.
func (h *UserHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	logs, err := h.logs.ListAll(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondMessage(w, http.StatusNotAcceptable, "User not found")
			return
		}
		h.internalError(w, "user logs", err)
		return
	}
	if len(logs) == 0 {
		respondEmpty(w, http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, userLogsResponse{Total: len(logs), Logs: logs})
}
