package handlers

import (
	"net/http"

	"github.com/gamestorebd/storefront/internal/session"
	"github.com/gorilla/csrf"
)

// RequireRole gates a route behind a logged-in user with the given role.
// The check is advisory display gating; the backend authorizes every
// admin call independently with the bearer token.
func RequireRole(sessions *session.Manager, templates *TemplateCache, role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(r)
		if !sess.LoggedIn() || sess.User.Role != role {
			tmpl := templates.Get("restricted.html")
			if tmpl == nil {
				http.Error(w, "Admin login required", http.StatusForbidden)
				return
			}
			w.WriteHeader(http.StatusForbidden)
			tmpl.Execute(w, viewData(r, sess))
			return
		}
		next(w, r)
	}
}

// viewData carries the fields every page template expects: the session
// for the navbar plus the CSRF field for forms. Handlers add their own
// entries on top.
func viewData(r *http.Request, sess session.Session) map[string]interface{} {
	return map[string]interface{}{
		"Token":     sess.Token,
		"User":      sess.User,
		"CsrfField": csrf.TemplateField(r),
	}
}
