package site

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/devcodecare/site/pkg/logger"
)

const (
	// IndexFile is served for the root and for unknown paths.
	IndexFile = "index.html"

	immutablePrefix = "/_next/"
	cacheImmutable  = "public, max-age=31536000, immutable"
	cacheIndex      = "no-cache"
)

// Handler serves the static site from a Resolver:
//
//   - paths under /_next/ are content-hashed build output and cached forever
//   - any other existing asset is served with its MIME type
//   - every other path gets index.html so client-side routing can take over
//   - without index.html the reply is 404 "Not found"
type Handler struct {
	resolver Resolver
	log      *slog.Logger
}

// NewHandler creates a static site handler.
func NewHandler(resolver Resolver, log *slog.Logger) *Handler {
	if resolver == nil {
		panic("site.NewHandler: nil resolver")
	}
	return &Handler{resolver: resolver, log: logger.OrDefault(log)}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	p := r.URL.Path
	if p != "/" {
		if asset := h.open(r, p); asset != nil {
			cache := ""
			if strings.HasPrefix(p, immutablePrefix) {
				cache = cacheImmutable
			}
			h.serve(w, r, asset, cache)
			return
		}
	}

	if index := h.open(r, IndexFile); index != nil {
		index.ContentType = ContentType(IndexFile)
		h.serve(w, r, index, cacheIndex)
		return
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

// open returns nil when the asset is missing or the resolver failed. Failures
// other than ErrNotFound are logged and treated as a miss.
func (h *Handler) open(r *http.Request, name string) *Asset {
	asset, err := h.resolver.Open(r.Context(), name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.log.WarnContext(r.Context(), "static asset lookup failed",
				slog.String("path", name), logger.Error(err))
		}
		return nil
	}
	return asset
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, a *Asset, cache string) {
	defer a.Body.Close()

	hdr := w.Header()
	hdr.Set("Content-Type", a.ContentType)
	hdr.Set("X-Content-Type-Options", "nosniff")
	if cache != "" {
		hdr.Set("Cache-Control", cache)
	}
	if a.ETag != "" {
		hdr.Set("ETag", a.ETag)
	}

	// Seekable bodies get range and conditional request support.
	if rs, ok := a.Body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, a.Name, a.ModTime, rs)
		return
	}

	if !a.ModTime.IsZero() {
		hdr.Set("Last-Modified", a.ModTime.UTC().Format(http.TimeFormat))
	}
	if a.Size > 0 {
		hdr.Set("Content-Length", strconv.FormatInt(a.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, a.Body); err != nil {
		h.log.DebugContext(r.Context(), "static asset write interrupted",
			slog.String("path", a.Name), logger.Error(err))
	}
}
