package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates a bare addr-spec such as "jo@example.com". Display
// names and angle brackets are rejected, and the domain must contain a dot.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Name != "" || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" || strings.Contains(domain, "@") {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Code:    "validation.email",
		},
	}
}
