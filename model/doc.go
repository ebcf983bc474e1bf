// Package model provides the shared data types for page analysis.
//
// This package defines the structures that flow between the block source,
// the table detector, and downstream consumers. An external extractor
// produces [TextBlock] values for one page; the tables package classifies
// and merges them into [TableRegion] values; the layout package turns the
// remainder into structured [Element] records.
//
// # Geometry
//
// The [Rect] type is an axis-aligned rectangle in page units, stored as
// corner coordinates (X0, Y0) and (X1, Y1) with Y increasing toward the
// bottom of the page, matching the coordinate convention of common text
// extractors (pdfplumber, hOCR).
//
// # Blocks and regions
//
// A [TextBlock] carries its bounding box, raw text, the extractor's type
// tag, and a stable Index. Identity is always the Index, never structural
// equality: two blocks may legitimately share identical geometry and text.
//
// A [TableRegion] is an ordered group of at least three table-like blocks
// judged to form one table, with a bounding box derived from its members.
package model
