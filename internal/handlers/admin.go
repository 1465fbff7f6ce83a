package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gamestorebd/storefront/internal/backend"
	"github.com/gamestorebd/storefront/internal/session"
)

type AdminHandler struct {
	Backend   *backend.Client
	Sessions  *session.Manager
	Templates *TemplateCache
}

// Dashboard shows the full catalog, the game creation form and every
// order with its status buttons. Routes using it are wrapped in
// RequireRole, so the session here always carries an admin.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Get(r)

	games, err := h.Backend.ListGames(r.Context(), "", "")
	if err != nil {
		http.Error(w, "Error fetching games", http.StatusBadGateway)
		return
	}
	orders, err := h.Backend.AllOrders(r.Context(), sess.Token)
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusBadGateway)
		return
	}

	tmpl := h.Templates.Get("admin.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := viewData(r, sess)
	data["Games"] = games
	data["Orders"] = orders
	data["Statuses"] = backend.Statuses
	data["Flashes"] = h.Sessions.Flashes(r, w)
	tmpl.Execute(w, data)
}

// CreateGame submits the catalog creation form. Success reloads the
// dashboard with a cleared form; failure shows a generic notice.
func (h *AdminHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Sessions.AddFlash(r, w, session.FlashMessage{Type: "error", Message: "Invalid form data."})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	sess := h.Sessions.Get(r)
	input := backend.GameInput{
		Title:       r.FormValue("title"),
		Platform:    r.FormValue("platform"),
		Price:       parsePrice(r.FormValue("price")),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Images:      splitImages(r.FormValue("images")),
	}

	if _, err := h.Backend.CreateGame(r.Context(), sess.Token, input); err != nil {
		slog.Error("Failed to create game", "title", input.Title, "error", err)
		h.Sessions.AddFlash(r, w, session.FlashMessage{Type: "error", Message: "Failed to add game."})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	h.Sessions.AddFlash(r, w, session.FlashMessage{Type: "success", Message: "Game added!"})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UpdateOrderStatus posts one status transition and reloads the
// dashboard. All four target statuses are offered regardless of the
// current one; the backend owns the rules.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	status := r.FormValue("status")

	sess := h.Sessions.Get(r)
	if err := h.Backend.UpdateOrderStatus(r.Context(), sess.Token, id, status); err != nil {
		slog.Error("Failed to update order status", "order", id, "status", status, "error", err)
		h.Sessions.AddFlash(r, w, session.FlashMessage{Type: "error", Message: "Failed to update order."})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	h.Sessions.AddFlash(r, w, session.FlashMessage{Type: "success", Message: "Order updated!"})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// parsePrice reads the free-text price field; empty or malformed input
// defaults to zero.
func parsePrice(s string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return price
}

// splitImages turns the comma-separated URL field into an ordered list,
// trimming surrounding whitespace from each entry.
func splitImages(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	images := make([]string, 0, len(parts))
	for _, p := range parts {
		images = append(images, strings.TrimSpace(p))
	}
	return images
}
