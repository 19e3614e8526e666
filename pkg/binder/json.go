package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (64 KiB).
const DefaultMaxJSONSize = 64 << 10

type jsonConfig struct {
	maxSize            int64
	requireContentType bool
	strict             bool
}

// JSONOption configures JSON decoding.
type JSONOption func(*jsonConfig)

// WithMaxSize overrides DefaultMaxJSONSize.
func WithMaxSize(n int64) JSONOption {
	if n <= 0 {
		panic("binder.WithMaxSize: size must be > 0")
	}
	return func(c *jsonConfig) { c.maxSize = n }
}

// WithRequireContentType rejects requests whose Content-Type is not
// application/json. Without it the header is ignored.
func WithRequireContentType() JSONOption {
	return func(c *jsonConfig) { c.requireContentType = true }
}

// WithStrict rejects unknown fields when decoding into a struct.
func WithStrict() JSONOption {
	return func(c *jsonConfig) { c.strict = true }
}

// JSON decodes the request body into v. The body is read up to the configured
// size limit and must contain exactly one JSON value. Every failure wraps
// ErrFailedToParseJSON, ErrBodyTooLarge or one of the content type errors.
func JSON(r *http.Request, v any, opts ...JSONOption) error {
	cfg := jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := r.Context().Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	if cfg.requireContentType {
		if err := checkContentType(r.Header.Get("Content-Type")); err != nil {
			return err
		}
	}

	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > cfg.maxSize {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, cfg.maxSize)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	if cfg.strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	return nil
}

func checkContentType(contentType string) error {
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
	}
	return nil
}
