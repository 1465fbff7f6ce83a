package handlers

import (
	"net/http"

	"github.com/gamestorebd/storefront/internal/backend"
	"github.com/gamestorebd/storefront/internal/session"
)

type OrderHandler struct {
	Backend   *backend.Client
	Sessions  *session.Manager
	Templates *TemplateCache
}

// MyOrders lists the visitor's own orders. Without a token it renders a
// login prompt and never touches the backend; /orders/mine is a
// protected endpoint.
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("orders.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	sess := h.Sessions.Get(r)
	data := viewData(r, sess)
	data["Flashes"] = h.Sessions.Flashes(r, w)

	if !sess.LoggedIn() {
		tmpl.Execute(w, data)
		return
	}

	orders, err := h.Backend.MyOrders(r.Context(), sess.Token)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusBadGateway)
		return
	}
	data["Orders"] = orders
	tmpl.Execute(w, data)
}
