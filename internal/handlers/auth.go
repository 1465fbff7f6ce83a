package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gamestorebd/storefront/internal/backend"
	"github.com/gamestorebd/storefront/internal/session"
)

type AuthHandler struct {
	Backend   *backend.Client
	Sessions  *session.Manager
	Templates *TemplateCache
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "login.html")
}

func (h *AuthHandler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "register.html")
}

func (h *AuthHandler) renderForm(w http.ResponseWriter, r *http.Request, name string) {
	tmpl := h.Templates.Get(name)
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	sess := h.Sessions.Get(r)
	data := viewData(r, sess)
	data["Flashes"] = h.Sessions.Flashes(r, w)
	tmpl.Execute(w, data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	creds := backend.Credentials{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	res, err := h.Backend.Login(r.Context(), creds)
	if err != nil {
		h.Sessions.AddFlash(r, w, session.FlashMessage{
			Type:    "error",
			Message: backend.Message(err, "Login failed."),
		})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.startSession(w, r, res)
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	req := backend.RegisterRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	res, err := h.Backend.Register(r.Context(), req)
	if err != nil {
		h.Sessions.AddFlash(r, w, session.FlashMessage{
			Type:    "error",
			Message: backend.Message(err, "Registration failed."),
		})
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	h.startSession(w, r, res)
}

// startSession persists the token and profile together, then lands on
// the catalog.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, res backend.AuthResult) {
	user := &session.User{Name: res.Name, Email: res.Email, Role: res.Role}
	if err := h.Sessions.Set(r, w, res.Token, user); err != nil {
		slog.Error("Failed to save session", "error", err)
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}
	slog.Info("Login successful", "email", res.Email, "role", res.Role)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears token and profile together and returns home.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(r, w); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
