package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/tablefind/model"
)

// Footnote patterns: "[1] ...", "(1) ...", and "1. ..." styles.
var footnotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\[\d+\]`),
	regexp.MustCompile(`^\(\d+\)`),
	regexp.MustCompile(`^\d+\.\s`),
}

// FootnoteDetector recognizes footnote-style blocks and groups them into
// a single footnote element per page. The zero value is ready to use.
type FootnoteDetector struct{}

// NewFootnoteDetector creates a footnote detector.
func NewFootnoteDetector() *FootnoteDetector {
	return &FootnoteDetector{}
}

// IsFootnote reports whether the text starts with a footnote marker.
func (d *FootnoteDetector) IsFootnote(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, pattern := range footnotePatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// Group collects all footnote blocks into one element covering their
// combined bounding box, with the individual notes joined by newlines.
// It returns nil when no block matches.
func (d *FootnoteDetector) Group(documentName string, pageNumber int, blocks []model.TextBlock) *model.Element {
	var notes []string
	var bbox model.Rect
	found := false

	for _, b := range blocks {
		if !d.IsFootnote(b.Text) {
			continue
		}
		notes = append(notes, strings.TrimSpace(b.Text))
		if !found {
			bbox = b.BBox
			found = true
		} else {
			bbox = bbox.Union(b.BBox)
		}
	}

	if !found {
		return nil
	}

	return &model.Element{
		DocumentName: documentName,
		SectionName:  "Footnotes",
		Type:         model.ElementTypeFootnote,
		Content:      strings.Join(notes, "\n"),
		PageNumber:   pageNumber,
		BBox:         bbox,
		Meta: model.ElementMeta{
			NoteCount: len(notes),
		},
	}
}
