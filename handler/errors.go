package handler

import "errors"

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrAlreadyWritten indicates a second attempt to write a response
	ErrAlreadyWritten = errors.New("response already written")
)
