package tables

import (
	"math"
	"strings"
	"testing"

	"github.com/tsawler/tablefind/model"
)

func TestDetector_Detect_EmptyPage(t *testing.T) {
	d := NewDetector()

	det, err := d.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(det.Regions) != 0 {
		t.Errorf("got %d regions on empty page, want 0", len(det.Regions))
	}
	if len(det.Leftovers) != 0 {
		t.Errorf("got %d leftovers on empty page, want 0", len(det.Leftovers))
	}
}

func TestDetector_Detect_Grid(t *testing.T) {
	d := NewDetector()
	blocks := gridBlocks()

	det, err := d.Detect(blocks)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}

	if len(det.Regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(det.Regions))
	}
	if len(det.Regions[0].Blocks) != 4 {
		t.Errorf("region has %d blocks, want 4", len(det.Regions[0].Blocks))
	}
	if len(det.Leftovers) != 0 {
		t.Errorf("got %d leftovers, want 0", len(det.Leftovers))
	}
}

func TestDetector_Detect_ProsePage(t *testing.T) {
	d := NewDetector()

	// Long paragraphs only: every block disqualified, all leftovers.
	blocks := []model.TextBlock{
		{Index: 0, Text: strings.Repeat("a", 300), BBox: model.NewRect(50, 100, 550, 200)},
		{Index: 1, Text: strings.Repeat("b", 300), BBox: model.NewRect(50, 220, 550, 320)},
	}

	det, err := d.Detect(blocks)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(det.Regions) != 0 {
		t.Errorf("got %d regions, want 0", len(det.Regions))
	}
	if len(det.Leftovers) != 2 {
		t.Errorf("got %d leftovers, want 2", len(det.Leftovers))
	}
}

func TestDetector_Detect_InvalidGeometrySkipped(t *testing.T) {
	d := NewDetector()

	blocks := gridBlocks()
	blocks = append(blocks,
		model.TextBlock{Index: 4, Text: "bad", BBox: model.NewRect(300, 300, 250, 310)}, // inverted X
		model.TextBlock{Index: 5, Text: "nan", BBox: model.NewRect(math.NaN(), 0, 10, 10)},
	)

	det, err := d.Detect(blocks)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}

	// The malformed blocks must not fail the page, must not join a
	// region, and must surface as leftovers.
	if len(det.Regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(det.Regions))
	}
	if len(det.Leftovers) != 2 {
		t.Fatalf("got %d leftovers, want 2", len(det.Leftovers))
	}
	for _, b := range det.Leftovers {
		if b.Index != 4 && b.Index != 5 {
			t.Errorf("unexpected leftover block %d", b.Index)
		}
	}
}

func TestDetector_Detect_SmallClusterLeftover(t *testing.T) {
	d := NewDetector()

	// The same 2x2 grid, but in column-major extractor order. Every block
	// still classifies as table-like, yet the merger (which follows input
	// order) sees two chains of two: jumping from the bottom of column A
	// to the top of column B exceeds both merge gaps. Both chains are too
	// small to commit, so all four blocks surface as leftovers.
	blocks := []model.TextBlock{
		{Index: 0, Text: "A1", BBox: model.NewRect(100, 100, 150, 110)},
		{Index: 1, Text: "A2", BBox: model.NewRect(100, 125, 150, 135)},
		{Index: 2, Text: "B1", BBox: model.NewRect(200, 100, 250, 110)},
		{Index: 3, Text: "B2", BBox: model.NewRect(200, 125, 250, 135)},
	}

	det, err := d.Detect(blocks)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(det.Regions) != 0 {
		t.Fatalf("got %d regions, want 0", len(det.Regions))
	}
	if len(det.Leftovers) != 4 {
		t.Errorf("got %d leftovers, want 4", len(det.Leftovers))
	}
}

func TestDetector_Detect_NonOverlap(t *testing.T) {
	d := NewDetector()

	// Two well-separated grids on one page.
	blocks := gridBlocks()
	for _, b := range gridBlocks() {
		b.Index += 4
		b.BBox = model.NewRect(b.BBox.X0, b.BBox.Y0+500, b.BBox.X1, b.BBox.Y1+500)
		blocks = append(blocks, b)
	}

	det, err := d.Detect(blocks)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}

	seen := make(map[int]bool)
	for _, region := range det.Regions {
		for _, b := range region.Blocks {
			if seen[b.Index] {
				t.Errorf("block %d appears in more than one region", b.Index)
			}
			seen[b.Index] = true
		}
	}

	// Leftovers and region members must partition the input.
	for _, b := range det.Leftovers {
		if seen[b.Index] {
			t.Errorf("block %d is both a region member and a leftover", b.Index)
		}
		seen[b.Index] = true
	}
	if len(seen) != len(blocks) {
		t.Errorf("regions and leftovers cover %d blocks, want %d", len(seen), len(blocks))
	}
}

func TestDetector_Detect_Deterministic(t *testing.T) {
	d := NewDetector()
	blocks := gridBlocks()

	first, err := d.Detect(blocks)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}

	for run := 0; run < 10; run++ {
		again, err := d.Detect(blocks)
		if err != nil {
			t.Fatalf("run %d: Detect() failed: %v", run, err)
		}
		if len(again.Regions) != len(first.Regions) || len(again.Leftovers) != len(first.Leftovers) {
			t.Fatalf("run %d: detection changed", run)
		}
	}
}
