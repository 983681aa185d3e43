package handlers

import (
	"net/http"
	"time"

	"github.com/katsura919/codely-backend/internal/models"
)

// Health is the liveness probe. No inputs, no failure modes.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
