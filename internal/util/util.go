package util

import (
	"os"
	"regexp"
)

var winVarRe = regexp.MustCompile(`%([A-Za-z0-9_]+)%`)

// ExpandEnvUniversal expands both Unix-style ($VAR, ${VAR}) and
// Windows-style (%VAR%) environment variable references. Unresolved
// references collapse to the empty string.
func ExpandEnvUniversal(s string) string {
	expanded := os.ExpandEnv(s)
	return winVarRe.ReplaceAllStringFunc(expanded, func(match string) string {
		if value, ok := os.LookupEnv(match[1 : len(match)-1]); ok {
			return value
		}
		return ""
	})
}

// Snippet returns a bounded prefix of a byte slice for debug logging,
// truncating on rune boundaries.
func Snippet(b []byte) string {
	const maxLen = 200
	s := string(b)
	if len(s) > maxLen {
		runes := []rune(s)
		if len(runes) > maxLen {
			return string(runes[:maxLen]) + "..."
		}
	}
	return s
}
