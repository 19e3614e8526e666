package contact

// Submission is a validated and sanitized contact form entry.
type Submission struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Subject      string  `json:"subject"`
	Service      Service `json:"service,omitempty"`
	OtherService string  `json:"otherService,omitempty"`
	Message      string  `json:"message"`
}

// ServiceLabel returns the human readable service line, or "" when no
// service was selected. For ServiceOther the visitor's own description is
// appended.
func (s Submission) ServiceLabel() string {
	switch {
	case s.Service == "":
		return ""
	case s.Service == ServiceOther:
		return "Other: " + s.OtherService
	default:
		return s.Service.Label()
	}
}

// FieldErrors maps a form field to its error message. The "general" key
// carries errors not tied to a field.
type FieldErrors map[string]string

// GeneralField is the FieldErrors key for form-level errors.
const GeneralField = "general"
