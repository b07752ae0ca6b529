package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/volunteerhub/api/internal/database"
)

// Health handles GET /health. It reports process liveness only; it does not
// check downstream dependencies.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready returns a handler for GET /health/ready that pings the database.
// Load balancers use it to keep traffic off instances with a dead connection.
func Ready(db database.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"reason": "database unreachable",
			})
			return
		}

		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
