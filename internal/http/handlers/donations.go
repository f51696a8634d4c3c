package handlers

import (
	"errors"
	"net/http"

	"ngoserver/internal/domain"
	"ngoserver/internal/service"
)

// DonationsCheckout records a donation. No payment is taken; the donation is stored as paid.
func (a *App) DonationsCheckout(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(w, r)
	if err != nil {
		a.writeBodyError(w, r, err)
		return
	}

	donation, err := a.Donations.Checkout(r.Context(), service.CheckoutInput{
		Name:      body.text("name"),
		Email:     body.text("email"),
		Amount:    body["amount"],
		ProjectID: body["project_id"],
	})
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		a.error(w, r, http.StatusBadRequest, msgInvalidAmount)
	case err != nil:
		a.internal(w, r, err)
	default:
		a.json(w, r, http.StatusOK, map[string]any{"ok": true, "donation": donation})
	}
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.List(r.Context())
	if err != nil {
		a.internal(w, r, err)
		return
	}
	a.json(w, r, http.StatusOK, items)
}
