package usecase

import (
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:[jJ][sS][oO][nN])?[ \t]*\r?\n?(.*?)\r?\n?[ \t]*```")

// StripCodeFence returns the body of the first ``` fenced block in a model
// reply (optionally tagged json). Replies without a fence are returned
// trimmed and otherwise unchanged.
func StripCodeFence(reply string) string {
	if m := codeFencePattern.FindStringSubmatch(reply); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(reply)
}

// canonical maps v onto the allowed value it matches case-insensitively.
// Unmatched values are returned as-is for validation to reject.
func canonical[T ~string](v T, allowed ...T) T {
	trimmed := strings.TrimSpace(string(v))
	for _, a := range allowed {
		if strings.EqualFold(trimmed, string(a)) {
			return a
		}
	}
	return v
}

// known is canonical but blanks values outside allowed.
func known[T ~string](v T, allowed ...T) T {
	c := canonical(v, allowed...)
	for _, a := range allowed {
		if c == a {
			return c
		}
	}
	return ""
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
