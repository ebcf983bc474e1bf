// Package tables detects table regions among the text blocks of a page.
//
// Detection runs in two stages:
//
//  1. The [Classifier] decides per block whether it is table-like, using
//     only the block's own geometry and text length plus its proximity and
//     alignment relationships to every other block on the page.
//  2. The region merger ([MergeIntoRegions]) walks the table-like blocks in
//     extractor order and greedily chains spatially adjacent ones into
//     [model.TableRegion] values, dropping chains of fewer than three
//     blocks as spurious.
//
// The [Detector] ties the stages together for one page and additionally
// reports the leftover blocks (everything not absorbed into a committed
// region) so callers can render the two categories separately.
//
// All thresholds are fixed constants; no configuration is exposed. Both
// stages are pure functions of their input: repeated calls over the same
// blocks produce identical results, and separate pages may be analyzed
// concurrently without synchronization.
//
// # Known limitation
//
// The merger checks adjacency only against the previously accepted block,
// not against the whole open region. A chain of pairwise-close blocks can
// therefore produce a region whose first and last members are far apart.
// Downstream consumers expect this exact behavior, so it is preserved
// rather than tightened to nearest-to-any-member.
package tables
