package tablefind

import "github.com/tsawler/tablefind/layout"

// analyzeOptions holds configuration for page analysis. The table
// detection thresholds themselves are fixed; options only control the
// structural view built over the detector's output.
type analyzeOptions struct {
	detectTitles    bool
	emitTitles      bool
	detectFootnotes bool
	defaultSection  string
}

// defaultAnalyzeOptions returns the default analysis options.
func defaultAnalyzeOptions() analyzeOptions {
	return analyzeOptions{
		detectTitles:    true,
		emitTitles:      false,
		detectFootnotes: true,
		defaultSection:  layout.DefaultSectionName,
	}
}

// clone returns a copy of the analyzer with the given mutation applied.
func (a *Analyzer) clone(mutate func(*analyzeOptions)) *Analyzer {
	next := *a
	mutate(&next.options)
	return &next
}

// EmitTitles makes detected section titles appear as elements of their
// own, in addition to naming the sections that follow them.
func (a *Analyzer) EmitTitles() *Analyzer {
	return a.clone(func(o *analyzeOptions) { o.emitTitles = true })
}

// WithoutTitles disables section-title detection; every non-table block
// becomes a paragraph in the default section.
func (a *Analyzer) WithoutTitles() *Analyzer {
	return a.clone(func(o *analyzeOptions) { o.detectTitles = false })
}

// WithoutFootnotes disables footnote grouping; footnote-style blocks
// come through as ordinary paragraphs.
func (a *Analyzer) WithoutFootnotes() *Analyzer {
	return a.clone(func(o *analyzeOptions) { o.detectFootnotes = false })
}

// DefaultSection sets the section name used for content that appears
// before the first detected title.
func (a *Analyzer) DefaultSection(name string) *Analyzer {
	return a.clone(func(o *analyzeOptions) { o.defaultSection = name })
}
