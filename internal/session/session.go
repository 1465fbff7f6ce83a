// Package session persists the visitor's bearer token and profile in a
// signed cookie. It is the only state this frontend keeps; everything
// else is fetched from the backend per request.
package session

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "store-session"

	tokenKey = "token"
	userKey  = "user"
)

// Register types stored in session values (gob-encoded by gorilla).
func init() {
	gob.Register(&User{})
	gob.Register(FlashMessage{})
}

// User is the profile the backend returned at login, cached for display
// and for the advisory admin gate. The backend remains the authority.
type User struct {
	Name  string
	Email string
	Role  string
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

type FlashMessage struct {
	Type    string
	Message string
}

// Session is the decoded state of the cookie: both fields set, or neither.
type Session struct {
	Token string
	User  *User
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}

type Manager struct {
	store *sessions.CookieStore
}

func NewManager(key []byte, secure bool, domain string) *Manager {
	store := sessions.NewCookieStore(key)
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = "/"
	if domain != "" {
		store.Options.Domain = domain
	}
	return &Manager{store: store}
}

// Get decodes the session cookie. Token and user are only honored as a
// pair; a half-written cookie reads as logged out.
func (m *Manager) Get(r *http.Request) Session {
	sess, _ := m.store.Get(r, cookieName)
	token, tokOK := sess.Values[tokenKey].(string)
	user, userOK := sess.Values[userKey].(*User)
	if !tokOK || !userOK || token == "" || user == nil {
		return Session{}
	}
	return Session{Token: token, User: user}
}

// Set writes token and profile together.
func (m *Manager) Set(r *http.Request, w http.ResponseWriter, token string, user *User) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Values[tokenKey] = token
	sess.Values[userKey] = user
	return sess.Save(r, w)
}

// Clear removes token and profile together and expires the cookie.
func (m *Manager) Clear(r *http.Request, w http.ResponseWriter) error {
	sess, _ := m.store.Get(r, cookieName)
	delete(sess.Values, tokenKey)
	delete(sess.Values, userKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// AddFlash queues a one-shot message for the next rendered page.
func (m *Manager) AddFlash(r *http.Request, w http.ResponseWriter, flash FlashMessage) {
	sess, _ := m.store.Get(r, cookieName)
	sess.AddFlash(flash)
	if err := sess.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
}

// Flashes drains queued messages. Saving clears them from the cookie.
func (m *Manager) Flashes(r *http.Request, w http.ResponseWriter) []FlashMessage {
	sess, _ := m.store.Get(r, cookieName)
	raw := sess.Flashes()
	if err := sess.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
	var messages []FlashMessage
	for _, f := range raw {
		if fm, ok := f.(FlashMessage); ok {
			messages = append(messages, fm)
		}
	}
	return messages
}
