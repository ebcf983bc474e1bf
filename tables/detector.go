package tables

import (
	"github.com/tsawler/tablefind/model"
)

// Detection holds the result of analyzing one page of text blocks.
type Detection struct {
	// Regions are the committed table regions, in the order their first
	// member appeared in the input.
	Regions []model.TableRegion

	// Leftovers are all input blocks that are not a member of any
	// committed region: non-table blocks, table-like blocks whose chain
	// was too small to commit, and blocks rejected for invalid geometry.
	// They are reported in input order so callers can render "everything
	// else" alongside the table regions.
	Leftovers []model.TextBlock
}

// Detector analyzes one page of text blocks at a time. It holds no state
// between calls; separate pages may be analyzed concurrently.
type Detector struct {
	classifier *Classifier
}

// NewDetector creates a page detector.
func NewDetector() *Detector {
	return &Detector{
		classifier: NewClassifier(),
	}
}

// Detect classifies the page's blocks and merges the table-like ones into
// regions. Blocks with invalid geometry (inverted or non-finite
// rectangles) are skipped before classification rather than failing the
// page; they surface in Leftovers. An empty page, or a page where every
// block is disqualified, yields an empty Detection and no error.
func (d *Detector) Detect(blocks []model.TextBlock) (*Detection, error) {
	if len(blocks) == 0 {
		return &Detection{}, nil
	}

	// Reject malformed rectangles up front; one bad block must not take
	// down the whole page.
	valid := make([]model.TextBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.BBox.IsValid() {
			valid = append(valid, b)
		}
	}

	// Classify in extractor order; the merger depends on it.
	var tableBlocks []model.TextBlock
	for _, b := range valid {
		if d.classifier.IsTableLike(valid, b) {
			tableBlocks = append(tableBlocks, b)
		}
	}

	regions := MergeIntoRegions(tableBlocks)

	merged := make(map[int]bool)
	for _, region := range regions {
		for _, b := range region.Blocks {
			merged[b.Index] = true
		}
	}

	leftovers := make([]model.TextBlock, 0, len(blocks)-len(merged))
	for _, b := range blocks {
		if !merged[b.Index] {
			leftovers = append(leftovers, b)
		}
	}

	return &Detection{
		Regions:   regions,
		Leftovers: leftovers,
	}, nil
}
