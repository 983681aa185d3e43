package services

import (
	"regexp"
	"strings"
)

var (
	leadingFence  = regexp.MustCompile("^```[a-zA-Z]*\r?\n?")
	trailingFence = regexp.MustCompile("\r?\n?```$")
)

// SanitizeCode strips an optional leading markdown code fence (with or
// without a language tag such as tsx or javascript) and an optional trailing
// fence, then trims surrounding whitespace. Idempotent; fence-free text comes
// back trimmed but otherwise untouched.
func SanitizeCode(raw string) string {
	code := strings.TrimSpace(raw)
	code = leadingFence.ReplaceAllString(code, "")
	code = trailingFence.ReplaceAllString(code, "")
	return strings.TrimSpace(code)
}
