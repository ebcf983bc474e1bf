package model

import (
	"encoding/json"
	"fmt"
)

// ElementType represents the type of a structured page element.
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeTable
	ElementTypeFootnote
	ElementTypeTitle
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "paragraph"
	case ElementTypeTable:
		return "table"
	case ElementTypeFootnote:
		return "footnote"
	case ElementTypeTitle:
		return "title"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the element type as its string name.
func (et ElementType) MarshalJSON() ([]byte, error) {
	return json.Marshal(et.String())
}

// UnmarshalJSON decodes an element type from its string name.
func (et *ElementType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "paragraph":
		*et = ElementTypeParagraph
	case "table":
		*et = ElementTypeTable
	case "footnote":
		*et = ElementTypeFootnote
	case "title":
		*et = ElementTypeTitle
	case "unknown":
		*et = ElementTypeUnknown
	default:
		return fmt.Errorf("unknown element type %q", s)
	}
	return nil
}

// Element is one structured record produced for a page: a detected table
// region, a paragraph attached to its section, or a footnote group. This is
// the shape handed to exporters and downstream consumers.
type Element struct {
	// DocumentName identifies the source document.
	DocumentName string `json:"document_name"`

	// SectionName is the section the element belongs to (the most recent
	// detected title, or the default section for leading content).
	SectionName string `json:"section_name"`

	// Type classifies the element.
	Type ElementType `json:"element_type"`

	// Content is the element's plain-text content.
	Content string `json:"content"`

	// PageNumber is the 1-indexed page the element appeared on.
	PageNumber int `json:"page_number"`

	// BBox is the element's bounding box in page units.
	BBox Rect `json:"bounding_box"`

	// Meta holds per-type measurements.
	Meta ElementMeta `json:"metadata"`
}

// ElementMeta holds optional per-type measurements for an element. Fields
// not relevant to an element type are zero and omitted from JSON output.
type ElementMeta struct {
	// Length is the rune count of the content (paragraphs).
	Length int `json:"length,omitempty"`

	// WordCount is the number of whitespace-separated words (paragraphs).
	WordCount int `json:"word_count,omitempty"`

	// BlockCount is the number of merged member blocks (tables).
	BlockCount int `json:"block_count,omitempty"`

	// NoteCount is the number of individual notes in a footnote group.
	NoteCount int `json:"note_count,omitempty"`
}
