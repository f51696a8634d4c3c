package handlers

import "net/http"

func (a *App) NGOsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.NGOs.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	a.json(w, r, http.StatusOK, items)
}
