package session

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/filterlab/pkg/filters"
)

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionName)
	return nil
}

func TestManager_LoadWithoutCookieReturnsDefaults(t *testing.T) {
	m := NewManager("test-secret")
	req := httptest.NewRequest("GET", "http://example.com/", nil)
	cfg, err := m.Load(req)
	require.NoError(t, err)
	require.Equal(t, filters.DefaultConfig(), cfg)
	require.True(t, m.CreatedAt(req).IsZero())
}

func TestManager_SaveAndLoad_RoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	want := filters.Config{Brightness: 120, Contrast: 90, Saturation: 0, Blur: 15, Sepia: 60}

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	rr := httptest.NewRecorder()
	require.NoError(t, m.Save(rr, req, want))

	cookie := sessionCookie(t, rr)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.False(t, cookie.Secure)

	req2 := httptest.NewRequest("GET", "http://example.com/", nil)
	req2.AddCookie(cookie)
	got, err := m.Load(req2)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.WithinDuration(t, time.Now(), m.CreatedAt(req2), 5*time.Second)
}

func TestManager_LoadClampsStoredValues(t *testing.T) {
	m := NewManager("test-secret")

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	rr := httptest.NewRecorder()
	sess, err := m.store.Get(req, SessionName)
	require.NoError(t, err)
	sess.Values["brightness"] = 999
	sess.Values["sepia"] = -4
	sess.Values["blur"] = "soft"
	require.NoError(t, sess.Save(req, rr))

	req2 := httptest.NewRequest("GET", "http://example.com/", nil)
	req2.AddCookie(sessionCookie(t, rr))

	cfg, err := m.Load(req2)
	require.NoError(t, err)
	require.Equal(t, 200, cfg.Brightness)
	require.Equal(t, 0, cfg.Sepia)
	require.Equal(t, 0, cfg.Blur)
	require.Equal(t, 100, cfg.Contrast)
}

func TestManager_ForeignSecretFallsBackToDefaults(t *testing.T) {
	a := NewManager("secret-a")
	b := NewManager("secret-b")

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	rr := httptest.NewRecorder()
	require.NoError(t, a.Save(rr, req, filters.Config{Brightness: 5}))

	req2 := httptest.NewRequest("GET", "http://example.com/", nil)
	req2.AddCookie(sessionCookie(t, rr))
	cfg, err := b.Load(req2)
	require.Error(t, err)
	require.Equal(t, filters.DefaultConfig(), cfg)
}

func TestManager_Save_SecureDetection(t *testing.T) {
	m := NewManager("test-secret")

	t.Run("tls implies secure", func(t *testing.T) {
		req := httptest.NewRequest("GET", "https://example.com/", nil)
		req.TLS = &tls.ConnectionState{}
		rr := httptest.NewRecorder()
		require.NoError(t, m.Save(rr, req, filters.DefaultConfig()))
		require.True(t, sessionCookie(t, rr).Secure)
	})

	t.Run("x-forwarded-proto implies secure", func(t *testing.T) {
		req := httptest.NewRequest("GET", "http://example.com/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		rr := httptest.NewRecorder()
		require.NoError(t, m.Save(rr, req, filters.DefaultConfig()))
		require.True(t, sessionCookie(t, rr).Secure)
	})
}

func TestManager_Clear(t *testing.T) {
	m := NewManager("test-secret")
	req := httptest.NewRequest("GET", "http://example.com/", nil)
	rr := httptest.NewRecorder()
	require.NoError(t, m.Clear(rr, req))
	require.Less(t, sessionCookie(t, rr).MaxAge, 0)
}

func TestNewManager_EmptySecretGeneratesOne(t *testing.T) {
	m := NewManager("")

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	rr := httptest.NewRecorder()
	require.NoError(t, m.Save(rr, req, filters.Config{Brightness: 42}))

	req2 := httptest.NewRequest("GET", "http://example.com/", nil)
	req2.AddCookie(sessionCookie(t, rr))
	cfg, err := m.Load(req2)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.Brightness)

	require.NotEqual(t, generateSecret(), generateSecret())
}
