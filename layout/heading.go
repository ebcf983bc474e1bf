package layout

import (
	"regexp"
	"strings"
)

// Title patterns: all-caps headings, numbered headings, and Title Case.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][A-Z\s]+$`),
	regexp.MustCompile(`^\d+\.\s+[A-Z]`),
	regexp.MustCompile(`^[A-Z][a-z]+(\s[A-Z][a-z]+)*$`),
}

// TitleDetector decides whether a block of text is likely a section title.
// The zero value is ready to use.
type TitleDetector struct{}

// NewTitleDetector creates a title detector.
func NewTitleDetector() *TitleDetector {
	return &TitleDetector{}
}

// IsTitle reports whether the text matches any of the title patterns
// after trimming surrounding whitespace.
func (d *TitleDetector) IsTitle(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for _, pattern := range titlePatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}
