package site_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devcodecare/site/modules/site"
	"github.com/devcodecare/site/pkg/logger"
)

var siteFiles = map[string]string{
	"index.html":               "<html>home</html>",
	"favicon.ico":              "ico",
	"_next/static/chunk-9f.js": "export {}",
	"_next/static/css/app.css": "body{}",
	"images/hero.webp":         "webp",
}

func serveSite(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerServesAssets(t *testing.T) {
	t.Parallel()

	h := site.NewHandler(newLocal(t, siteFiles), logger.Discard())

	tests := []struct {
		name      string
		path      string
		wantBody  string
		wantType  string
		wantCache string
	}{
		{"root serves index", "/", "<html>home</html>", "text/html; charset=utf-8", "no-cache"},
		{"explicit index", "/index.html", "<html>home</html>", "text/html; charset=utf-8", ""},
		{"hashed script", "/_next/static/chunk-9f.js", "export {}", "text/javascript; charset=utf-8", "public, max-age=31536000, immutable"},
		{"hashed stylesheet", "/_next/static/css/app.css", "body{}", "text/css; charset=utf-8", "public, max-age=31536000, immutable"},
		{"plain asset", "/images/hero.webp", "webp", "image/webp", ""},
		{"favicon", "/favicon.ico", "ico", "image/x-icon", ""},
		{"client route falls back", "/services/web-development", "<html>home</html>", "text/html; charset=utf-8", "no-cache"},
		{"missing asset falls back", "/missing.css", "<html>home</html>", "text/html; charset=utf-8", "no-cache"},
		{"traversal falls back", "/../../etc/passwd", "<html>home</html>", "text/html; charset=utf-8", "no-cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := serveSite(t, h, http.MethodGet, tt.path)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantCache, rec.Header().Get("Cache-Control"))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestHandlerWithoutIndex(t *testing.T) {
	t.Parallel()

	h := site.NewHandler(newLocal(t, map[string]string{"robots.txt": "User-agent: *"}), logger.Discard())

	rec := serveSite(t, h, http.MethodGet, "/about")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", strings.TrimSpace(rec.Body.String()))

	rec = serveSite(t, h, http.MethodGet, "/robots.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User-agent: *", rec.Body.String())
}

func TestHandlerMethods(t *testing.T) {
	t.Parallel()

	h := site.NewHandler(newLocal(t, siteFiles), logger.Discard())

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rec := serveSite(t, h, method, "/")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"), method)
	}

	rec := serveSite(t, h, http.MethodHead, "/_next/static/chunk-9f.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
}

// stubResolver serves from a map with bodies that cannot seek.
type stubResolver struct {
	assets map[string]string
	err    error
}

func (s stubResolver) Open(_ context.Context, name string) (*site.Asset, error) {
	if s.err != nil {
		return nil, s.err
	}
	body, ok := s.assets[name]
	if !ok {
		return nil, site.ErrNotFound
	}
	return &site.Asset{
		Name:        name,
		Body:        io.NopCloser(strings.NewReader(body)),
		Size:        int64(len(body)),
		ModTime:     time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		ContentType: site.ContentType(name),
		ETag:        `"v1"`,
	}, nil
}

func TestHandlerStreamedAssets(t *testing.T) {
	t.Parallel()

	h := site.NewHandler(stubResolver{assets: map[string]string{
		"index.html":      "home",
		"_next/data.json": `{"ok":true}`,
	}}, logger.Discard())

	rec := serveSite(t, h, http.MethodGet, "/_next/data.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
	assert.Equal(t, `"v1"`, rec.Header().Get("ETag"))
	assert.Equal(t, "Thu, 02 Jan 2025 03:04:05 GMT", rec.Header().Get("Last-Modified"))
	assert.Equal(t, "11", rec.Header().Get("Content-Length"))

	rec = serveSite(t, h, http.MethodHead, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestHandlerResolverFailure(t *testing.T) {
	t.Parallel()

	h := site.NewHandler(stubResolver{err: errors.Join(site.ErrServiceUnavailable, errors.New("slow down"))}, logger.Discard())

	rec := serveSite(t, h, http.MethodGet, "/pricing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", strings.TrimSpace(rec.Body.String()))
}

func TestNewHandlerNilResolver(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { site.NewHandler(nil, nil) })
}
