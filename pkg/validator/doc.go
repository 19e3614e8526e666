// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check closure with the ValidationError reported when the check
// fails. Apply runs every rule and aggregates failures into ValidationErrors,
// which implements error. ApplyFirst stops evaluating a field after its first
// failure, which is what form endpoints want when they return one message per
// field:
//
//	err := validator.ApplyFirst(
//	    validator.MinLen("name", name, 2).WithMessage("Name must be at least 2 characters"),
//	    validator.MaxLen("name", name, 100),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    body["errors"] = verrs.Map()
//	}
//
// String lengths are counted in Unicode code points, not bytes.
//
// The package is stateless and safe for concurrent use.
package validator
