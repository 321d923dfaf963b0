package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civansanli/portfolio/internal/page"
	"github.com/civansanli/portfolio/internal/profile"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, staticDir string, now time.Time) *Server {
	t.Helper()
	s, err := New(profile.Default(), Options{
		StaticDir: staticDir,
		HashSalt:  "test-salt",
		Now:       func() time.Time { return now },
	})
	require.NoError(t, err)
	return s
}

func do(s *Server, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndexRendersPage(t *testing.T) {
	now := time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)
	s := newTestServer(t, t.TempDir(), now)

	w := do(s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "Merhaba, ben Civan 👋")
	assert.Contains(t, body, "© 2030 Civan Şanlı")
	for _, id := range page.Anchors {
		assert.Contains(t, body, `id="`+id+`"`)
	}
}

func TestIndexYearFollowsClock(t *testing.T) {
	current := time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)
	s, err := New(profile.Default(), Options{HashSalt: "x", Now: func() time.Time { return current }})
	require.NoError(t, err)

	assert.Contains(t, do(s, http.MethodGet, "/", nil).Body.String(), "© 2026 ")
	current = current.Add(time.Hour)
	assert.Contains(t, do(s, http.MethodGet, "/", nil).Body.String(), "© 2027 ")
}

func TestResume(t *testing.T) {
	dir := t.TempDir()
	s := newTestServer(t, dir, time.Now())

	w := do(s, http.MethodGet, "/cv.pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.pdf"), []byte("%PDF-1.4 test"), 0o644))
	w = do(s, http.MethodGet, "/cv.pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4 test", w.Body.String())
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o644))
	s := newTestServer(t, dir, time.Now())

	w := do(s, http.MethodGet, "/static/site.css", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, t.TempDir(), time.Now())
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/healthz", nil).Code)

	broken := newTestServer(t, filepath.Join(t.TempDir(), "missing"), time.Now())
	assert.NotEqual(t, http.StatusOK, do(broken, http.MethodGet, "/healthz", nil).Code)
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, t.TempDir(), time.Now())

	w := do(s, http.MethodGet, "/", nil)
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	w = do(s, http.MethodGet, "/", http.Header{requestIDHeader: []string{"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestVisitLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.InfoLevel)
	t.Cleanup(func() { log.Logger = prev })

	s := newTestServer(t, t.TempDir(), time.Now())
	req := http.Header{"User-Agent": []string{"test-agent"}}

	do(s, http.MethodGet, "/", req)
	out := buf.String()
	assert.Contains(t, out, `"visitor":"`)
	assert.Contains(t, out, `"user_agent":"test-agent"`)
	assert.NotContains(t, out, "192.0.2.1")

	buf.Reset()
	do(s, http.MethodGet, "/", http.Header{"Dnt": []string{"1"}})
	assert.Empty(t, buf.String())

	buf.Reset()
	do(s, http.MethodGet, "/static/site.css", nil)
	assert.Empty(t, buf.String())
}

func TestIsVisit(t *testing.T) {
	tests := []struct {
		path string
		dnt  string
		want bool
	}{
		{path: "/", want: true},
		{path: "/", dnt: "1", want: false},
		{path: "/", dnt: "0", want: true},
		{path: "/static/site.css", want: false},
		{path: "/cv.pdf", want: false},
		{path: "/healthz", want: false},
		{path: "/favicon.ico", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.path+"_"+tt.dnt, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.dnt != "" {
				c.Request.Header.Set("DNT", tt.dnt)
			}
			assert.Equal(t, tt.want, isVisit(c))
		})
	}
}

func TestIPHasher(t *testing.T) {
	h, err := newIPHasher("salt")
	require.NoError(t, err)

	a := h.Hash("192.0.2.1")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.Hash("192.0.2.1"))
	assert.NotEqual(t, a, h.Hash("192.0.2.2"))

	other, err := newIPHasher("pepper")
	require.NoError(t, err)
	assert.NotEqual(t, a, other.Hash("192.0.2.1"))

	random, err := newIPHasher("")
	require.NoError(t, err)
	assert.NotEmpty(t, random.salt)
}
