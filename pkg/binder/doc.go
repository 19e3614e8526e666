// Package binder decodes HTTP request bodies.
//
// JSON reads at most DefaultMaxJSONSize bytes (configurable with WithMaxSize),
// requires the body to hold exactly one JSON value and reports failures as
// wrapped sentinel errors:
//
//	var raw any
//	if err := binder.JSON(r, &raw); err != nil {
//		switch {
//		case errors.Is(err, binder.ErrBodyTooLarge):
//			// ...
//		case errors.Is(err, binder.ErrFailedToParseJSON):
//			// ...
//		}
//	}
//
// The Content-Type header is only enforced with WithRequireContentType and
// unknown struct fields are only rejected with WithStrict.
package binder
