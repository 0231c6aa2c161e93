package http_handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/mgeraldo/contact-book/internal/transport/http/response"
)

// HealthHandler reports liveness and readiness for the contact-book
// process. Liveness is unconditional; readiness degrades when the
// contact store cannot be reached.
type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz handles GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, healthStatus{Status: "ok"})
}

// Readyz handles GET /readyz. An in-memory deployment has no database
// handle and is always ready.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := healthStatus{Status: "ready"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		body.Checks = map[string]string{"postgres": "ok"}
		if err := h.db.PingContext(ctx); err != nil {
			body.Status = "degraded"
			body.Checks["postgres"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
	}

	response.WriteJSON(w, status, body)
}
