package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/devcodecare/site/pkg/logger"
)

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ResponseFunc adapts a plain function to Response.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

// Render implements Response.
func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// Write renders resp and logs rendering failures. A nil response or a
// response written after the status line was already sent is reported as an
// error in the log but never written twice.
func Write(w http.ResponseWriter, r *http.Request, resp Response, log *slog.Logger) {
	log = logger.OrDefault(log)

	if resp == nil {
		log.ErrorContext(r.Context(), "render response", logger.Error(ErrNilResponse))
		if !IsWritten(w) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if err := resp.Render(w, r); err != nil {
		level := slog.LevelError
		if errors.Is(err, ErrAlreadyWritten) {
			level = slog.LevelWarn
		}
		log.Log(r.Context(), level, "render response", logger.Error(err))
	}
}
