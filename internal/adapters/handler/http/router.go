package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewHandler(userHandler *UserHandler, logHandler *LogHandler, auth *AuthMiddleware, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/signup", userHandler.Signup)
		r.Post("/signin", userHandler.Signin)
		r.Post("/restore", userHandler.Restore)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Patch("/", userHandler.Update)
			r.Delete("/", userHandler.SoftDelete)
			r.Delete("/hard", userHandler.HardDelete)
			r.Get("/logs", userHandler.GetLogs)
		})
	})

	r.Route("/logs", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Post("/", logHandler.Create)
		r.Get("/sender/{senderApplication}", logHandler.ListBySender)
		r.Get("/environment/{environment}", logHandler.ListByEnvironment)
		r.Get("/level/{level}", logHandler.ListByLevel)
		r.Delete("/id/{id}", logHandler.SoftDelete)
		r.Delete("/all", logHandler.SoftDeleteAll)
		r.Delete("/hard/{id}", logHandler.HardDelete)
		r.Delete("/all/hard", logHandler.HardDeleteAll)
		r.Post("/restore/id/{id}", logHandler.Restore)
		r.Post("/restore/all", logHandler.RestoreAll)
	})

	return r
}
