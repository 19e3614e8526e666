package sanitizer

import "regexp"

var (
	angleBracketRegex   = regexp.MustCompile(`[<>]`)
	jsProtocolRegex     = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex   = regexp.MustCompile(`(?i)on\w+=`)
	whitespaceRegex     = regexp.MustCompile(`\s+`)
	driveLetterRegex    = regexp.MustCompile(`^[a-zA-Z]:`)
	unsafeFilenameRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)
