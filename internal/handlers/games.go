package handlers

import (
	"errors"
	"net/http"

	"github.com/gamestorebd/storefront/internal/backend"
	"github.com/gamestorebd/storefront/internal/session"
)

type GameHandler struct {
	Backend   *backend.Client
	Sessions  *session.Manager
	Templates *TemplateCache
}

// Detail renders one game with the checkout form (Nagad transaction id
// plus delivery email).
func (h *GameHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	game, err := h.Backend.GetGame(r.Context(), id)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) && be.Status == http.StatusNotFound {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		http.Error(w, "Error fetching game", http.StatusBadGateway)
		return
	}

	tmpl := h.Templates.Get("game.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess := h.Sessions.Get(r)
	data := viewData(r, sess)
	data["Game"] = game
	data["Flashes"] = h.Sessions.Flashes(r, w)
	tmpl.Execute(w, data)
}

// PlaceOrder submits the checkout form. The bearer token is attached
// when the visitor is logged in; guests may order too. A successful
// order lands on the order history page, a failed one stays on the game.
func (h *GameHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		h.Sessions.AddFlash(r, w, session.FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, "/game/"+id, http.StatusSeeOther)
		return
	}

	sess := h.Sessions.Get(r)
	req := backend.OrderRequest{
		GameID:        id,
		TransactionID: r.FormValue("transaction_id"),
		DeliveryEmail: r.FormValue("delivery_email"),
	}

	if _, err := h.Backend.PlaceOrder(r.Context(), sess.Token, req); err != nil {
		h.Sessions.AddFlash(r, w, session.FlashMessage{
			Type:    "error",
			Message: backend.Message(err, "Could not place your order."),
		})
		http.Redirect(w, r, "/game/"+id, http.StatusSeeOther)
		return
	}

	h.Sessions.AddFlash(r, w, session.FlashMessage{
		Type:    "success",
		Message: "Order received! You will get the game by email within 2 hours of verification.",
	})
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
