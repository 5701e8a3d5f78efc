package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/nyxa-games/emberdeep/internal/database"
	"github.com/nyxa-games/emberdeep/internal/logger"
)

// readinessTimeout bounds the database ping during readiness checks
const readinessTimeout = 2 * time.Second

// HealthStatus is the payload returned by the health endpoints
type HealthStatus struct {
	Status string `json:"status"`
}

// HandleHealthz reports process liveness. It never touches dependencies so a
// degraded database does not get the process restarted.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthStatus{Status: "ok"})
}

// HandleReadyz reports readiness to serve traffic, including database
// connectivity.
func HandleReadyz(db database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log := logger.FromContext(r.Context())
			log.Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthStatus{Status: "unavailable"})
			return
		}

		respondJSON(w, http.StatusOK, HealthStatus{Status: "ready"})
	}
}
