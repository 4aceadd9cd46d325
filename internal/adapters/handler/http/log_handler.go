package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/ports"
	"github.com/logbook/api/internal/validation"
	"go.uber.org/zap"
)

type LogHandler struct {
	logs   ports.LogService
	logger *zap.Logger
}

func NewLogHandler(logs ports.LogService, logger *zap.Logger) *LogHandler {
	return &LogHandler{
		logs:   logs,
		logger: logger,
	}
}

func (h *LogHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("unexpected failure", zap.String("op", op), zap.Error(err))
	respondInternalError(w)
}

// logID parses the {id} route parameter. A malformed reference is a plain
// 404 with an empty body, distinct from the 204 empty-signal for a
// well-formed id that matches nothing.
func logID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondEmpty(w, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

type createdLogResponse struct {
	CreatedLog *domain.Log `json:"createdLog"`
}

// Create godoc
// @Summary      Submits an application log for the authenticated user
// @Tags         logs
// @Accept       json
// @Success      201
// @Failure      406
// @Router       /logs [post]
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var payload validation.LogPayload
	if err := decodeStrict(r, &payload); err != nil {
		respondMessage(w, http.StatusNotAcceptable, "Invalid data")
		return
	}

	log, err := h.logs.Create(r.Context(), userID, payload)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			respondMessage(w, http.StatusNotAcceptable, "Invalid data")
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			respondMessage(w, http.StatusNotAcceptable, "User not found")
			return
		}
		h.internalError(w, "log create", err)
		return
	}

	respondJSON(w, http.StatusCreated, createdLogResponse{CreatedLog: log})
}

func (h *LogHandler) ListBySender(w http.ResponseWriter, r *http.Request) {
	h.listByField(w, r, ports.LogFieldSenderApplication, chi.URLParam(r, "senderApplication"))
}

func (h *LogHandler) ListByEnvironment(w http.ResponseWriter, r *http.Request) {
	h.listByField(w, r, ports.LogFieldEnvironment, chi.URLParam(r, "environment"))
}

func (h *LogHandler) ListByLevel(w http.ResponseWriter, r *http.Request) {
	h.listByField(w, r, ports.LogFieldLevel, chi.URLParam(r, "level"))
}

func (h *LogHandler) listByField(w http.ResponseWriter, r *http.Request, field ports.LogField, value string) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	logs, err := h.logs.ListByField(r.Context(), userID, field, value)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondMessage(w, http.StatusNotAcceptable, "User not found")
			return
		}
		h.internalError(w, "log list", err)
		return
	}
	if len(logs) == 0 {
		respondEmpty(w, http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

func (h *LogHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	id, ok := logID(w, r)
	if !ok {
		return
	}

	if err := h.logs.SoftDelete(r.Context(), userID, id); err != nil {
		h.respondMutationError(w, "log soft-delete", err)
		return
	}
	respondMessage(w, http.StatusOK, "Deleted successfully")
}

func (h *LogHandler) SoftDeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.logs.SoftDeleteAll(r.Context(), userID); err != nil {
		h.respondMutationError(w, "log soft-delete all", err)
		return
	}
	respondMessage(w, http.StatusOK, "Deleted successfully")
}

func (h *LogHandler) HardDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	id, ok := logID(w, r)
	if !ok {
		return
	}

	if err := h.logs.HardDelete(r.Context(), userID, id); err != nil {
		h.respondMutationError(w, "log hard-delete", err)
		return
	}
	respondMessage(w, http.StatusOK, "Deleted successfully, this action cannot be undone")
}

func (h *LogHandler) HardDeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.logs.HardDeleteAll(r.Context(), userID); err != nil {
		h.respondMutationError(w, "log hard-delete all", err)
		return
	}
	respondMessage(w, http.StatusOK, "Deleted successfully, this action cannot be undone")
}

func (h *LogHandler) Restore(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	id, ok := logID(w, r)
	if !ok {
		return
	}

	if err := h.logs.Restore(r.Context(), userID, id); err != nil {
		h.respondMutationError(w, "log restore", err)
		return
	}
	respondMessage(w, http.StatusOK, "Log restored successfully")
}

func (h *LogHandler) RestoreAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.logs.RestoreAll(r.Context(), userID); err != nil {
		h.respondMutationError(w, "log restore all", err)
		return
	}
	respondMessage(w, http.StatusOK, "All logs restored successfully")
}

// respondMutationError maps the shared failure modes of the delete/restore
// operations: an absent target is the empty-signal, a gone owning user is
// 406, anything else is internal.
func (h *LogHandler) respondMutationError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respondEmpty(w, http.StatusNoContent)
		return
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		respondMessage(w, http.StatusNotAcceptable, "User not found")
		return
	}
	h.internalError(w, op, err)
}
