package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ngoserver/internal/domain"
	"ngoserver/internal/service"
)

func (a *App) OpportunitiesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Volunteering.Opportunities(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	a.json(w, r, http.StatusOK, items)
}

// OpportunitiesApply records a volunteer application. Ids that are not
// integers cannot match any opportunity and answer 404.
func (a *App) OpportunitiesApply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.error(w, r, http.StatusNotFound, msgOpportunityNotFound)
		return
	}
	body, err := decodeBody(w, r)
	if err != nil {
		a.writeBodyError(w, r, err)
		return
	}

	application, err := a.Volunteering.Apply(r.Context(), id, service.ApplyInput{
		Name:    body.text("name"),
		Email:   body.text("email"),
		Message: body.text("message"),
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, r, http.StatusNotFound, msgOpportunityNotFound)
	case err != nil:
		a.internal(w, r, err)
	default:
		a.json(w, r, http.StatusOK, map[string]any{"ok": true, "application": application})
	}
}
