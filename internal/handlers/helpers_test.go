package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gamestorebd/storefront/internal/session"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTemplates(t *testing.T) *TemplateCache {
	t.Helper()
	tc := NewTemplateCache()
	tc.AddFunc("taka", func(price float64) string {
		return "৳ " + strconv.FormatFloat(price, 'f', -1, 64)
	})
	require.NoError(t, tc.Load("../../templates"))
	return tc
}

func newSessions() *session.Manager {
	return session.NewManager(testKey, false, "")
}

// sessionCookies logs a fake user in and returns the cookies a browser
// would carry on the next request.
func sessionCookies(t *testing.T, m *session.Manager, token, role string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	user := &session.User{Name: "Test User", Email: "test@example.com", Role: role}
	require.NoError(t, m.Set(r, w, token, user))
	return w.Result().Cookies()
}

func withCookies(r *http.Request, cookies []*http.Cookie) *http.Request {
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func formRequest(method, target string, form url.Values) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}
