package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status  int
	headers http.Header
	body    any
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithHeader sets a response header.
func WithHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		r.headers.Set(key, value)
	}
}

// JSON creates a JSON response with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status:  http.StatusOK,
		headers: make(http.Header),
		body:    v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	if IsWritten(w) {
		return ErrAlreadyWritten
	}

	// Encode first so a marshalling failure can still produce a clean 500.
	body, err := json.Marshal(j.body)
	if err != nil {
		return fmt.Errorf("encode json response: %w", err)
	}

	h := w.Header()
	for k, v := range j.headers {
		h[k] = v
	}
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(j.status)
	_, err = w.Write(append(body, '\n'))
	return err
}
