package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Matches validates value against a precompiled pattern. Empty values fail.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
			Code:    "validation.regex_pattern",
			Params:  map[string]any{"pattern": re.String(), "description": description},
		},
	}
}
