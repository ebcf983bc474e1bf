package tables

import (
	"math"

	"github.com/tsawler/tablefind/model"
)

// Region merging thresholds, in page units.
const (
	// mergeGap is the maximum vertical-or-horizontal distance between a
	// block and the previously accepted block for them to chain into the
	// same region.
	mergeGap = 20

	// minRegionBlocks is the smallest chain committed as a region;
	// shorter chains are dropped as spurious.
	minRegionBlocks = 3

	// maxRegionBlocks caps a region's size, preventing runaway merges
	// across an entire dense page.
	maxRegionBlocks = 20
)

// MergeIntoRegions greedily merges spatially adjacent table-like blocks
// into maximal regions. Input order matters: tableBlocks must be in the
// extractor's original order, and adjacency is checked only against the
// immediately preceding accepted block, not the whole open region.
//
// A chain is committed as a region only when it reaches minRegionBlocks
// members; shorter chains are silently dropped (their blocks surface as
// leftovers via the Detector). A region that reaches maxRegionBlocks is
// closed unconditionally, and the block that hit the cap starts a fresh
// chain without being re-tested against the closed region.
func MergeIntoRegions(tableBlocks []model.TextBlock) []model.TableRegion {
	if len(tableBlocks) == 0 {
		return nil
	}

	var regions []model.TableRegion
	open := []model.TextBlock{tableBlocks[0]}

	commit := func() {
		if len(open) >= minRegionBlocks {
			regions = append(regions, model.NewTableRegion(open))
		}
	}

	for _, b := range tableBlocks[1:] {
		prev := open[len(open)-1]
		if adjacent(b.BBox, prev.BBox) && len(open) < maxRegionBlocks {
			open = append(open, b)
			continue
		}
		commit()
		open = []model.TextBlock{b}
	}
	commit()

	return regions
}

// adjacent reports whether block b sits directly below or directly to the
// right of prev, within the merge gap on either axis.
func adjacent(b, prev model.Rect) bool {
	return math.Abs(b.Y0-prev.Y1) < mergeGap || math.Abs(b.X0-prev.X1) < mergeGap
}
