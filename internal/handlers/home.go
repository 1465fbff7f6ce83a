package handlers

import (
	"net/http"

	"github.com/gamestorebd/storefront/internal/backend"
	"github.com/gamestorebd/storefront/internal/session"
)

type HomeHandler struct {
	Backend   *backend.Client
	Sessions  *session.Manager
	Templates *TemplateCache
}

// Index renders the catalog grid with the search and platform filters.
// Both filters are applied by the backend via query parameters.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	// The root pattern catches every unmatched path; send those home.
	if r.URL.Path != "/" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	search := r.URL.Query().Get("search")
	platform := r.URL.Query().Get("platform")

	games, err := h.Backend.ListGames(r.Context(), search, platform)
	if err != nil {
		http.Error(w, "Error fetching games", http.StatusBadGateway)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess := h.Sessions.Get(r)
	data := viewData(r, sess)
	data["Games"] = games
	data["Search"] = search
	data["Platform"] = platform
	data["Flashes"] = h.Sessions.Flashes(r, w)
	tmpl.Execute(w, data)
}
