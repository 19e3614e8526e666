package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinLen validates that value has at least min characters (Unicode code points).
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Code:    "validation.min_length",
			Params:  map[string]any{"min": min},
		},
	}
}

// MaxLen validates that value has at most max characters (Unicode code points).
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Code:    "validation.max_length",
			Params:  map[string]any{"max": max},
		},
	}
}

// MinLenTrimmed is MinLen applied to the value with surrounding whitespace removed.
func MinLenTrimmed(field, value string, min int) Rule {
	return MinLen(field, strings.TrimSpace(value), min)
}
