package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxSummaryInputChars is the number of characters of a file sent to the summarization model.
const MaxSummaryInputChars = 10_000

// IsBlank reports whether the text has no content besides whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// TruncateRunes returns the first max characters of text without splitting a multi-byte character.
func TruncateRunes(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	count := 0
	for i := range text {
		if count == max {
			return text[:i]
		}
		count++
	}
	return text
}

// IsTextContent reports whether raw file bytes look like text that can be summarized.
// Content holding NUL bytes or invalid UTF-8 is treated as binary.
func IsTextContent(raw []byte) bool {
	for _, b := range raw {
		if b == 0 {
			return false
		}
	}
	return utf8.Valid(raw)
}
