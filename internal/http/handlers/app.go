package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"ngoserver/internal/domain"
	"ngoserver/internal/service"
)

// App carries the dependencies shared by every handler.
type App struct {
	NGOs         domain.NGORepository
	Projects     domain.ProjectRepository
	Posts        domain.PostRepository
	Donations    *service.Donations
	Volunteering *service.Volunteering
	Log          zerolog.Logger
}

// json encodes v before writing the status, so an unencodable value becomes a 500.
func (a *App) json(w http.ResponseWriter, r *http.Request, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		a.internal(w, r, fmt.Errorf("encode response: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

// error writes {"error": message} with the message localized for the request.
func (a *App) error(w http.ResponseWriter, r *http.Request, code int, key string) {
	a.json(w, r, code, map[string]string{"error": localize(r.Context(), key)})
}

// internal logs err and answers 500 without leaking details.
func (a *App) internal(w http.ResponseWriter, r *http.Request, err error) {
	a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	a.error(w, r, http.StatusInternalServerError, msgInternal)
}
