// Number formatting utilities for display output.

package format

import "strings"

// FormatNumberString inserts a space every three digits, counting from the
// right, e.g. "1234567" -> "1 234 567". Non-digit input is returned unchanged.
func FormatNumberString(s string) string {
	if len(s) <= 3 {
		return s
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}

	var sb strings.Builder
	sb.Grow(len(s) + len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
