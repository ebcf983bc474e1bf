// Package tablefind provides a fluent API for finding table regions among
// the positioned text blocks of a page and assembling the page's remaining
// content into structured elements.
//
// The input is a flat, ordered list of text blocks for one page, as
// produced by an external extraction layer (pdfplumber-style extractors,
// hOCR output via the hocr package, or anything else that reports bounding
// boxes and text). The output is a set of table-region bounding boxes plus
// the leftover blocks, so a renderer can draw the two categories over a
// page image.
//
// Basic usage:
//
//	result, err := tablefind.New("report.pdf").AnalyzePage(1, blocks)
//	if err != nil {
//	    // handle error
//	}
//	for _, region := range result.Regions {
//	    draw(region.BBox)
//	}
//
// With options:
//
//	result, err := tablefind.New("report.pdf").
//	    EmitTitles().
//	    DefaultSection("Preamble").
//	    AnalyzePage(1, blocks)
//
// For advanced use cases, the lower-level tables and layout packages are
// also available.
package tablefind

import (
	"fmt"

	"github.com/tsawler/tablefind/hocr"
	"github.com/tsawler/tablefind/layout"
	"github.com/tsawler/tablefind/model"
	"github.com/tsawler/tablefind/tables"
)

// Analyzer analyzes pages of text blocks for a named document. Analyzers
// are immutable: every option method returns a copy, and a single
// Analyzer may be shared across pages and goroutines.
type Analyzer struct {
	documentName string
	options      analyzeOptions
}

// New creates an Analyzer for the named document with default options:
// title and footnote detection on, titles not emitted as elements.
func New(documentName string) *Analyzer {
	return &Analyzer{
		documentName: documentName,
		options:      defaultAnalyzeOptions(),
	}
}

// PageAnalysis holds everything produced for one page.
type PageAnalysis struct {
	// Regions are the detected table regions in first-member order.
	Regions []model.TableRegion

	// Leftovers are the blocks outside every region, in input order.
	Leftovers []model.TextBlock

	// Elements is the structured view: paragraphs attached to sections,
	// one element per table region, and the page's footnote group.
	Elements []model.Element
}

// AnalyzePage runs table detection and structure assembly over one page
// of blocks. Each call is independent and retains no references into the
// caller's slice. An empty page yields an empty analysis, not an error.
func (a *Analyzer) AnalyzePage(pageNumber int, blocks []model.TextBlock) (*PageAnalysis, error) {
	det, err := tables.NewDetector().Detect(blocks)
	if err != nil {
		return nil, fmt.Errorf("detecting tables on page %d: %w", pageNumber, err)
	}

	sb := layout.NewStructureBuilderWithConfig(layout.StructureConfig{
		DetectTitles:    a.options.detectTitles,
		EmitTitles:      a.options.emitTitles,
		DetectFootnotes: a.options.detectFootnotes,
		DefaultSection:  a.options.defaultSection,
	})

	return &PageAnalysis{
		Regions:   det.Regions,
		Leftovers: det.Leftovers,
		Elements:  sb.Build(a.documentName, pageNumber, det.Regions, det.Leftovers),
	}, nil
}

// AnalyzeHOCR parses an hOCR document and analyzes every page,
// returning the concatenated elements in page order.
func (a *Analyzer) AnalyzeHOCR(data []byte) ([]model.Element, error) {
	doc, err := hocr.Parse(data)
	if err != nil {
		return nil, err
	}

	var elements []model.Element
	for _, page := range doc.Pages {
		result, err := a.AnalyzePage(page.Number, page.Blocks)
		if err != nil {
			return nil, err
		}
		elements = append(elements, result.Elements...)
	}
	return elements, nil
}
