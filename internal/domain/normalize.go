package domain

import (
	"strings"
)

// CleanText prepares user-facing labels (set names) for storage:
//   - trims leading/trailing whitespace
//   - turns tabs and newlines into spaces
//   - compresses runs of spaces into one
//
// Case and script are preserved.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == '\t' || r == '\n' || r == '\r' {
			r = ' '
		}
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
