// Package sanitizer provides small, composable string cleaners for user input.
//
// The helpers fall into three groups:
//
//   - Strings: NormalizeUnicode, RemoveControlChars, SingleLine.
//   - Format: NormalizeEmail.
//   - Security: StripUnsafe for markup and script fragments in form fields,
//     SanitizePath and SanitizeFilename for filesystem lookups and writes.
//
// Apply and Compose chain helpers into pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.StripUnsafe,
//	)
//	name := clean(raw)
//
// Every helper is a pure function and safe for concurrent use.
package sanitizer
