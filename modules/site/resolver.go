package site

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"
	"time"
)

// Asset is an opened static file. Callers must close Body.
type Asset struct {
	Name        string
	Body        io.ReadCloser
	Size        int64
	ModTime     time.Time
	ContentType string
	ETag        string
}

// Resolver opens static assets by slash-separated path relative to the site
// root. It returns ErrNotFound when nothing exists at name; directories count
// as absent.
type Resolver interface {
	Open(ctx context.Context, name string) (*Asset, error)
}

// Fallbacks for extensions the platform MIME table may not know.
var contentTypes = map[string]string{
	".html":        "text/html; charset=utf-8",
	".js":          "text/javascript; charset=utf-8",
	".mjs":         "text/javascript; charset=utf-8",
	".css":         "text/css; charset=utf-8",
	".json":        "application/json",
	".map":         "application/json",
	".svg":         "image/svg+xml",
	".webp":        "image/webp",
	".avif":        "image/avif",
	".ico":         "image/x-icon",
	".woff":        "font/woff",
	".woff2":       "font/woff2",
	".txt":         "text/plain; charset=utf-8",
	".xml":         "application/xml",
	".webmanifest": "application/manifest+json",
}

// ContentType returns the MIME type for name based on its extension, or
// application/octet-stream when unknown.
func ContentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
