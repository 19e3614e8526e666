// Package handler holds the response plumbing shared by HTTP modules.
//
// Handlers build a Response value and hand it to Write, which renders it and
// logs failures:
//
//	handler.Write(w, r, handler.JSON(body,
//		handler.WithJSONStatus(http.StatusTooManyRequests),
//		handler.WithHeader("Retry-After", "60"),
//	), log)
//
// StatusWriter records whether a status line was sent, so a recover at the
// request boundary can tell if it is still allowed to write an error body.
// JSON responses refuse to render twice through a StatusWriter and return
// ErrAlreadyWritten instead.
package handler
