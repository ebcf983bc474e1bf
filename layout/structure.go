package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/tablefind/model"
)

// DefaultSectionName is the section assigned to content that appears
// before any detected title.
const DefaultSectionName = "Introduction"

// StructureConfig holds configuration for page structure assembly.
type StructureConfig struct {
	// DetectTitles enables section-title detection over leftover blocks.
	DetectTitles bool

	// EmitTitles additionally emits detected titles as elements of their
	// own. When false, titles only name the sections that follow them.
	EmitTitles bool

	// DetectFootnotes enables grouping footnote-style blocks into one
	// footnote element per page.
	DetectFootnotes bool

	// DefaultSection is the section name used before the first title.
	DefaultSection string
}

// DefaultStructureConfig returns the default assembly configuration.
func DefaultStructureConfig() StructureConfig {
	return StructureConfig{
		DetectTitles:    true,
		EmitTitles:      false,
		DetectFootnotes: true,
		DefaultSection:  DefaultSectionName,
	}
}

// StructureBuilder assembles the ordered element list for one page from
// the table detector's output. It holds no per-page state; one builder
// may serve many pages.
type StructureBuilder struct {
	config    StructureConfig
	titles    *TitleDetector
	footnotes *FootnoteDetector
}

// NewStructureBuilder creates a builder with default configuration.
func NewStructureBuilder() *StructureBuilder {
	return NewStructureBuilderWithConfig(DefaultStructureConfig())
}

// NewStructureBuilderWithConfig creates a builder with custom configuration.
func NewStructureBuilderWithConfig(config StructureConfig) *StructureBuilder {
	if config.DefaultSection == "" {
		config.DefaultSection = DefaultSectionName
	}
	return &StructureBuilder{
		config:    config,
		titles:    NewTitleDetector(),
		footnotes: NewFootnoteDetector(),
	}
}

// Build produces the page's elements: paragraphs (and optionally titles)
// from the leftover blocks in extractor order, then one element per table
// region, then the footnote group if any. Leftover blocks recognized as
// titles or footnotes are not duplicated as paragraphs.
func (sb *StructureBuilder) Build(documentName string, pageNumber int, regions []model.TableRegion, leftovers []model.TextBlock) []model.Element {
	var elements []model.Element

	section := sb.config.DefaultSection
	var footnoteBlocks []model.TextBlock

	for _, b := range leftovers {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}

		if sb.config.DetectTitles && sb.titles.IsTitle(text) {
			section = text
			if sb.config.EmitTitles {
				elements = append(elements, model.Element{
					DocumentName: documentName,
					SectionName:  section,
					Type:         model.ElementTypeTitle,
					Content:      text,
					PageNumber:   pageNumber,
					BBox:         b.BBox,
				})
			}
			continue
		}

		if sb.config.DetectFootnotes && sb.footnotes.IsFootnote(text) {
			footnoteBlocks = append(footnoteBlocks, b)
			continue
		}

		elements = append(elements, model.Element{
			DocumentName: documentName,
			SectionName:  section,
			Type:         model.ElementTypeParagraph,
			Content:      text,
			PageNumber:   pageNumber,
			BBox:         b.BBox,
			Meta: model.ElementMeta{
				Length:    utf8.RuneCountInString(text),
				WordCount: len(strings.Fields(text)),
			},
		})
	}

	for i, region := range regions {
		elements = append(elements, model.Element{
			DocumentName: documentName,
			SectionName:  tableSectionName(i),
			Type:         model.ElementTypeTable,
			Content:      region.Text(),
			PageNumber:   pageNumber,
			BBox:         region.BBox,
			Meta: model.ElementMeta{
				BlockCount: len(region.Blocks),
			},
		})
	}

	if sb.config.DetectFootnotes {
		if fn := sb.footnotes.Group(documentName, pageNumber, footnoteBlocks); fn != nil {
			elements = append(elements, *fn)
		}
	}

	return elements
}

// tableSectionName names a table's section by its 1-based position on
// the page.
func tableSectionName(index int) string {
	return fmt.Sprintf("Table %d", index+1)
}
