package tables

import (
	"math"

	"github.com/tsawler/tablefind/model"
)

// Classification thresholds, in page units. Table cells are assumed short
// and narrow; long or wide blocks are prose.
const (
	// maxPreCheckTextLen disqualifies a block outright when its trimmed
	// text exceeds this many runes (strict: exactly 200 passes).
	maxPreCheckTextLen = 200

	// maxCellWidth disqualifies a block wider than this.
	maxCellWidth = 400

	// nearbyGap is the maximum vertical gap to count another block as
	// stacked directly above or below the candidate.
	nearbyGap = 20

	// edgeTolerance is the maximum edge offset to count two blocks as
	// sharing a column (X edges) or a row (Y edges).
	edgeTolerance = 5

	// verticalAlignSpan limits column-partner search to blocks within
	// this vertical distance of the candidate.
	verticalAlignSpan = 50

	// horizontalAlignSpan limits row-partner search to blocks within
	// this horizontal distance of the candidate.
	horizontalAlignSpan = 200

	// maxCellTextLen is the final text-length gate: a table cell must
	// hold strictly fewer runes than this.
	maxCellTextLen = 100

	// minNearby is the minimum number of vertically adjacent blocks a
	// table cell must have (tables are dense).
	minNearby = 2
)

// Classifier decides whether individual text blocks are table-like.
// The zero value is ready to use; Classifier is stateless and safe for
// concurrent use.
type Classifier struct{}

// NewClassifier creates a block classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// alignmentCounts accumulates the three relationship signals gathered
// during the all-pairs scan.
type alignmentCounts struct {
	nearby     int
	vertical   int
	horizontal int
}

// IsTableLike reports whether candidate is plausibly one cell of a table,
// judged against every other block on the page. The scan excludes the
// candidate itself by Index, so a block is never compared against itself
// even when another block shares identical geometry and text.
//
// The scan is O(n) per candidate and O(n²) per page, which is acceptable
// at page scale (at most a few hundred blocks). It is kept behind this
// function boundary so a spatial index could replace it without changing
// the contract.
func (c *Classifier) IsTableLike(all []model.TextBlock, candidate model.TextBlock) bool {
	// Long or wide blocks are prose, not cells.
	if candidate.TrimmedLen() > maxPreCheckTextLen {
		return false
	}
	if candidate.BBox.Width() > maxCellWidth {
		return false
	}

	counts := c.scanRelationships(all, candidate)

	// A table cell needs evidence of a column partner, a row partner,
	// and at least two neighbors, and must hold short cell-like text.
	return counts.vertical >= 1 &&
		counts.horizontal >= 1 &&
		counts.nearby >= minNearby &&
		candidate.TrimmedLen() < maxCellTextLen
}

// scanRelationships counts the candidate's proximity and alignment
// partners over all other blocks.
func (c *Classifier) scanRelationships(all []model.TextBlock, candidate model.TextBlock) alignmentCounts {
	var counts alignmentCounts

	cb := candidate.BBox
	for _, o := range all {
		if o.Index == candidate.Index {
			continue
		}
		ob := o.BBox

		// Stacked directly above or below within the gap threshold.
		if math.Abs(ob.Y0-cb.Y1) < nearbyGap || math.Abs(cb.Y0-ob.Y1) < nearbyGap {
			counts.nearby++
		}

		// Shared column: left or right edges line up, and the blocks sit
		// within the same vertical cluster.
		if (math.Abs(cb.X0-ob.X0) < edgeTolerance || math.Abs(cb.X1-ob.X1) < edgeTolerance) &&
			math.Abs(cb.Y0-ob.Y0) < verticalAlignSpan {
			counts.vertical++
		}

		// Shared row: top or bottom edges line up, and the blocks sit
		// within the same horizontal span.
		if (math.Abs(cb.Y0-ob.Y0) < edgeTolerance || math.Abs(cb.Y1-ob.Y1) < edgeTolerance) &&
			math.Abs(cb.X0-ob.X0) < horizontalAlignSpan {
			counts.horizontal++
		}
	}

	return counts
}
