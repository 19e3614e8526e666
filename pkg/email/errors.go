package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrInvalidConfig     = errors.New("invalid email configuration")
	ErrInvalidMessage    = errors.New("invalid email message")
	ErrNotConfigured     = errors.New("email strategy not configured")
)

// APIError is returned by HTTP based strategies when the provider rejects a
// request. Its message is the provider's own explanation when one is
// available.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrFailedToSendEmail) hold for API errors.
func (e *APIError) Is(target error) bool {
	return target == ErrFailedToSendEmail
}
