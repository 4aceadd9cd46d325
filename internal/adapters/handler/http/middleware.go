package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/logbook/api/internal/core/ports"
	"go.uber.org/zap"
)

type contextKey string

// UserIDKey carries the authenticated user's id through the request
// context. The id is resolved from the token only; existence is re-checked
// by the services.
const UserIDKey contextKey = "userID"

type AuthMiddleware struct {
	tokens ports.TokenService
}

func NewAuthMiddleware(tokens ports.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth guards protected routes. A missing Authorization header is
// distinct from a present-but-unusable one: 403 "Token not provided" vs
// 401 "Invalid token".
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondMessage(w, http.StatusForbidden, "Token not provided")
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || token == "" {
			respondMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
