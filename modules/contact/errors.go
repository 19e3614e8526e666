package contact

import "errors"

var (
	// ErrNoStrategy is reported when the dispatcher has no configured strategy.
	ErrNoStrategy = errors.New("no configured email strategy")
	// ErrSendTimeout is reported when a strategy does not finish within the send timeout.
	ErrSendTimeout = errors.New("email send timed out")
	// ErrUnexpectedFault wraps a panic recovered from a strategy.
	ErrUnexpectedFault = errors.New("unexpected mailer fault")
)
