package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// GeminiStatus reports whether a generation key is available, without
// revealing it. The env key wins over the stored one.
func (a *App) GeminiStatus(w http.ResponseWriter, r *http.Request) {
	configured := a.EnvKeySet
	source := ""
	if configured {
		source = "env"
	} else if a.Keys != nil {
		key, err := a.Keys.GeminiAPIKey(r.Context())
		if err != nil {
			a.fail(w, err)
			return
		}
		if key != "" {
			configured = true
			source = "store"
		}
	}
	a.json(w, http.StatusOK, map[string]any{"configured": configured, "source": source})
}

type geminiKeyRequest struct {
	APIKey string `json:"api_key"`
}

// GeminiKeySet stores the generation key. Takes effect on next restart when
// the env key is unset.
func (a *App) GeminiKeySet(w http.ResponseWriter, r *http.Request) {
	if a.Keys == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "no key store configured")
		return
	}
	var req geminiKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.APIKey) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "api_key is required")
		return
	}
	if err := a.Keys.SetGeminiAPIKey(r.Context(), req.APIKey); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
