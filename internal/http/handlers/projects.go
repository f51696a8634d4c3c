package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ngoserver/internal/domain"
)

func (a *App) ProjectsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Projects.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	a.json(w, r, http.StatusOK, items)
}

// ProjectsGet resolves {id} as a numeric id first, then as a slug.
func (a *App) ProjectsGet(w http.ResponseWriter, r *http.Request) {
	project, err := a.findProject(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, r, http.StatusNotFound, msgProjectNotFound)
	case err != nil:
		a.internal(w, r, err)
	default:
		a.json(w, r, http.StatusOK, project)
	}
}

func (a *App) findProject(ctx context.Context, token string) (*domain.Project, error) {
	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		p, err := a.Projects.GetByID(ctx, id)
		if err == nil || !errors.Is(err, domain.ErrNotFound) {
			return p, err
		}
	}
	return a.Projects.GetBySlug(ctx, token)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
