package services

import (
	"regexp"
	"strings"
)

const (
	emailPlaceholder = "<email>"
	phonePlaceholder = "<phone>"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\b\+?\d[\d\s-]{7,}\b`)
)

// MaskPII redacts email addresses and phone-number-like digit runs from text
// before it reaches a log file. Masking is idempotent: the placeholder tokens
// do not match either pattern, so re-masking is a no-op. The live response
// path never calls this; masking is a logging-privacy control only.
func MaskPII(text string) string {
	masked := emailPattern.ReplaceAllString(text, emailPlaceholder)
	return phonePattern.ReplaceAllStringFunc(masked, func(m string) string {
		if countDigits(m) < 8 {
			// Short runs like dates or IDs stay readable.
			return m
		}
		return phonePlaceholder
	})
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// MaskIfPresent returns the placeholder when value is non-empty, keeping the
// omitempty behavior of the handoff log record intact.
func MaskIfPresent(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return placeholder
}
