package model

import (
	"strings"
	"unicode/utf8"
)

// TextBlock represents one positioned block of text on a page, as reported
// by an external extraction layer. Blocks are immutable for the duration of
// one analysis pass and are not retained between calls.
type TextBlock struct {
	// Index is the block's stable identifier within the page. All identity
	// comparisons use Index, never structural equality, because distinct
	// blocks can share identical geometry and text.
	Index int

	// Text is the raw text content (may contain whitespace and newlines).
	Text string

	// BBox is the block's bounding box in page units.
	BBox Rect

	// Kind is the block type tag reported by the extractor. It is passed
	// through to consumers and never interpreted here.
	Kind string
}

// TrimmedLen returns the number of runes in the block's text after
// stripping leading and trailing whitespace.
func (b TextBlock) TrimmedLen() int {
	return utf8.RuneCountInString(strings.TrimSpace(b.Text))
}

// TableRegion represents one detected table: an ordered group of
// table-like blocks plus the bounding box covering all of them. Regions
// always hold at least three members and never share a member with
// another region.
type TableRegion struct {
	// Blocks are the member blocks in the order they were merged.
	Blocks []TextBlock

	// BBox is the element-wise min/max over all member boxes.
	BBox Rect
}

// NewTableRegion creates a region from its member blocks and derives the
// combined bounding box. The caller guarantees blocks is non-empty.
func NewTableRegion(blocks []TextBlock) TableRegion {
	bbox := blocks[0].BBox
	for _, b := range blocks[1:] {
		bbox = bbox.Union(b.BBox)
	}
	return TableRegion{Blocks: blocks, BBox: bbox}
}

// ContainsIndex reports whether the region holds a block with the given index.
func (r TableRegion) ContainsIndex(index int) bool {
	for _, b := range r.Blocks {
		if b.Index == index {
			return true
		}
	}
	return false
}

// Text concatenates the member blocks' text in merge order, one block per
// line, for plain-text consumers.
func (r TableRegion) Text() string {
	var sb strings.Builder
	for i, b := range r.Blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.TrimSpace(b.Text))
	}
	return sb.String()
}
