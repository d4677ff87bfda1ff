package util

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks line on spaces so that no line exceeds width runes, unless a single word is
// longer than width. Continuation lines are prefixed with indent. A width <= 0 disables
// wrapping.
func Wrap(line string, width int, indent string) string {
	if width <= 0 || utf8.RuneCountInString(line) <= width {
		return line
	}

	var (
		sb        strings.Builder
		length    int
		lineStart = true
	)

	for _, word := range strings.Split(line, " ") {
		wordLen := utf8.RuneCountInString(word)
		if !lineStart && length+1+wordLen > width {
			sb.WriteString("\n")
			sb.WriteString(indent)
			length = utf8.RuneCountInString(indent)
			lineStart = true
		}
		if !lineStart {
			sb.WriteString(" ")
			length++
		}
		sb.WriteString(word)
		length += wordLen
		lineStart = false
	}

	return sb.String()
}
