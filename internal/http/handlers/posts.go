package handlers

import "net/http"

func (a *App) PostsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Posts.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	a.json(w, r, http.StatusOK, items)
}
