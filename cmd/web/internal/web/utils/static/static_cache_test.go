package static

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"testing/fstest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestNewStaticCache_BuildsEntries(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)
	require.NotNil(t, cache)
	require.NotEmpty(t, cache.entries)

	ci, ok := cache.Lookup("dist/main.css")
	require.True(t, ok, "expected dist/main.css to be embedded")

	require.NotEmpty(t, ci.ETag)
	require.True(t, regexp.MustCompile(`^\"[0-9a-f]{64}\"$`).MatchString(ci.ETag))
	require.True(t, ci.Size > 0)
	require.False(t, ci.LastModified.IsZero())
}

func serve(t *testing.T, cache *StaticCache, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/static/*", cache.ServeStaticFile("/static/"))
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServeStaticFile_CacheHeaders(t *testing.T) {
	modTime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cache, err := newStaticCache(fstest.MapFS{
		"dist/main.css":  {Data: []byte("body{}"), ModTime: modTime},
		"img/sample.jpg": {Data: []byte{0xff, 0xd8}, ModTime: modTime},
	})
	require.NoError(t, err)

	rec := serve(t, cache, "/static/dist/main.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	require.Equal(t, "no-cache, must-revalidate", rec.Header().Get(echo.HeaderCacheControl))
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec = serve(t, cache, "/static/dist/main.css", http.Header{"If-None-Match": {etag}})
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = serve(t, cache, "/static/img/sample.jpg", http.Header{
		echo.HeaderIfModifiedSince: {modTime.Add(time.Hour).Format(http.TimeFormat)},
	})
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = serve(t, cache, "/static/img/sample.jpg", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderCacheControl), "max-age=31536000")

	rec = serve(t, cache, "/static/missing.css", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
