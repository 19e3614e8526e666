package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InList validates that value is one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of the allowed values",
			Code:    "validation.in_list",
			Params:  map[string]any{"allowed": allowed},
		},
	}
}

// InListString is InList for strings with the allowed values in the message.
func InListString(field, value string, allowed []string) Rule {
	r := InList(field, value, allowed)
	r.Error.Message = fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", "))
	return r
}
