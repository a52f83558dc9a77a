package handlers

import (
	"context"
	"net/http"
	"time"
	"unicode/utf8"
)

type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics reports backend and store health. Every failure path becomes
// an explanatory string in the payload; this endpoint never returns an HTTP
// error.
func (h *Handler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := diagnosticsResponse{
		Backend:          "running",
		Database:         "not configured",
		DatabaseURL:      envStatus("DATABASE_URL"),
		DatabaseName:     envStatus("DATABASE_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.store.Ready(ctx); err != nil {
			resp.Database = "connection error: " + truncate(err.Error(), 50)
		} else {
			resp.ConnectionStatus = "connected"
			names, err := h.store.ListCollectionNames(ctx)
			if err != nil {
				resp.Database = "connected, listing failed: " + truncate(err.Error(), 50)
			} else {
				resp.Database = "connected"
				if len(names) > 10 {
					names = names[:10]
				}
				resp.Collections = names
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// truncate caps s at n runes, never splitting a multi-byte character.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
