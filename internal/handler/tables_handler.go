package handlers

import (
	"net/http"
)

// Health pings the database and reports how many tables the public schema
// holds.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.CountTables(r.Context())
	if err != nil {
		h.Log.WithError(err).Warn("health check failed")
		WriteError(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"status": "ok",
		"tables": count,
	}, http.StatusOK)
}
