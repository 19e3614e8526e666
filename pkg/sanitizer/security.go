package sanitizer

import (
	"path"
	"strings"
)

// StripUnsafe removes angle brackets, "javascript:" protocols and inline event
// handler prefixes such as "onclick=", then trims whitespace.
//
// Removal is repeated until the string stops changing, so fragments that
// reassemble after one pass ("javajavascript:script:") are removed too and
// StripUnsafe(StripUnsafe(s)) == StripUnsafe(s). Every pass only deletes, so
// the loop terminates.
func StripUnsafe(s string) string {
	for {
		next := stripOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

func stripOnce(s string) string {
	s = angleBracketRegex.ReplaceAllString(s, "")
	s = jsProtocolRegex.ReplaceAllString(s, "")
	s = eventHandlerRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// SanitizePath cleans a URL or file path for lookup under a root directory.
// The result is relative, uses forward slashes and never escapes the root.
func SanitizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = driveLetterRegex.ReplaceAllString(strings.TrimLeft(p, "/"), "")
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// SanitizeFilename replaces filesystem-unsafe characters with '_', trims dots
// and spaces and enforces a 255-byte limit. Empty results become "file".
func SanitizeFilename(filename string) string {
	safe := unsafeFilenameRegex.ReplaceAllString(filename, "_")
	safe = strings.Trim(safe, " .")
	if len(safe) > 255 {
		safe = safe[:255]
	}
	if safe == "" {
		safe = "file"
	}
	return safe
}
