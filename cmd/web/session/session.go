// Package session keeps the current filter settings of a browser session in
// a signed cookie.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"thirdcoast.systems/filterlab/pkg/filters"
)

const (
	SessionName       = "filterlab_session"
	SessionCreatedKey = "created_at"
)

type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	if secret == "" {
		secret = generateSecret()
	}
	return &Manager{
		store: sessions.NewCookieStore([]byte(secret)),
	}
}

func generateSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate session secret", "error", err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// Load returns the session's filter settings. Missing or malformed fields
// fall back to their defaults and every value is clamped into its domain.
// A cookie that cannot be decoded yields the defaults and a non-nil error;
// callers that do not overwrite the session should Clear it.
func (m *Manager) Load(r *http.Request) (filters.Config, error) {
	cfg := filters.DefaultConfig()

	sess, err := m.store.Get(r, SessionName)
	if err != nil {
		_, cookieErr := r.Cookie(SessionName)
		slog.Warn("failed to decode session", "error", err, "host", r.Host, "has_cookie", cookieErr == nil)
		return cfg, err
	}

	for _, p := range filters.Parameters() {
		raw, ok := sess.Values[p.String()]
		if !ok {
			continue
		}
		v, ok := raw.(int)
		if !ok {
			slog.Warn("ignoring malformed session value", "param", p.String())
			continue
		}
		cfg, _ = cfg.With(p, v)
	}
	return cfg, nil
}

// Save replaces the stored settings with cfg.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, cfg filters.Config) error {
	sess, _ := m.store.Get(r, SessionName)
	for _, p := range filters.Parameters() {
		sess.Values[p.String()] = cfg.Get(p)
	}
	if _, ok := sess.Values[SessionCreatedKey]; !ok {
		sess.Values[SessionCreatedKey] = time.Now().Unix()
	}

	isHTTPS := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"

	// MaxAge 0 makes this a browser-session cookie; settings end with the session.
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isHTTPS,
	}

	return sess.Save(r, w)
}

// CreatedAt returns the time the session was first saved, or zero.
func (m *Manager) CreatedAt(r *http.Request) time.Time {
	sess, err := m.store.Get(r, SessionName)
	if err != nil {
		return time.Time{}
	}

	val, ok := sess.Values[SessionCreatedKey]
	if !ok {
		return time.Time{}
	}

	unix, ok := val.(int64)
	if !ok {
		return time.Time{}
	}

	return time.Unix(unix, 0)
}

func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, SessionName)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
