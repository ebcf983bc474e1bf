// Package layout turns the blocks left over after table detection into
// structured page elements.
//
// The package provides three pieces:
//
//   - [TitleDetector] - decides whether a block's text looks like a
//     section title (all caps, numbered heading, or Title Case)
//   - [FootnoteDetector] - recognizes footnote-style lines ([1], (1),
//     or 1. prefixes) and groups them into one footnote element per page
//   - [StructureBuilder] - walks table regions and leftover blocks and
//     assembles the ordered element list for one page, attaching each
//     paragraph to the most recent section title
//
// Detection is purely textual and geometric; no fonts or styling are
// consulted, because the upstream extractor does not supply them.
package layout
