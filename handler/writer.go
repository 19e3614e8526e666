package handler

import "net/http"

// StatusWriter records the status code sent through an http.ResponseWriter.
type StatusWriter struct {
	http.ResponseWriter
	status int
}

// NewStatusWriter wraps w. Wrapping a *StatusWriter returns it unchanged.
func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	if sw, ok := w.(*StatusWriter); ok {
		return sw
	}
	return &StatusWriter{ResponseWriter: w}
}

// WriteHeader records the first status code and forwards it.
func (w *StatusWriter) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Write sends an implicit 200 status when none was written.
func (w *StatusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Status returns the written status code, or 0 when nothing was written.
func (w *StatusWriter) Status() int { return w.status }

// Written reports whether the status line has been sent.
func (w *StatusWriter) Written() bool { return w.status != 0 }

// Unwrap supports http.ResponseController.
func (w *StatusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// IsWritten reports whether w is a *StatusWriter that already sent a status.
func IsWritten(w http.ResponseWriter) bool {
	sw, ok := w.(*StatusWriter)
	return ok && sw.Written()
}
