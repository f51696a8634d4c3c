package handlers

import (
	"net/http"
)

// Health reports whether the project collection can still be read and encoded.
// A project total that no longer encodes makes the service degraded.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	projects, err := a.Projects.List(r.Context())
	if err != nil {
		a.Log.Error().Err(err).Msg("health: list projects")
		a.json(w, r, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	for _, p := range projects {
		if !finite(p.RaisedAmount) || !finite(p.GoalAmount) {
			a.Log.Error().Int64("project_id", p.ID).Msg("health: project amount not finite")
			a.json(w, r, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	a.json(w, r, http.StatusOK, map[string]any{"status": "ok", "projects": len(projects)})
}
