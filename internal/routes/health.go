package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giannis84/subway-favorites/internal/logging"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RegisterHealthRoutes creates the health check endpoints.
func RegisterHealthRoutes(db Pinger) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})

		r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
			if err := db.PingContext(r.Context()); err != nil {
				logging.Log(r.Context()).Layer("routes").Op("ready").Err(err).Warn("database not ready")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("database not ready"))
				return
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("Ready"))
		})
	}
}
