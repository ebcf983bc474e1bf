// Package export serializes analyzed page elements for downstream use.
//
// Supported formats:
//
//   - JSON - a single JSON array of elements
//   - JSON Lines - one JSON object per line
//   - CSV - one row per element with flattened geometry
//
// Basic usage:
//
//	exporter := export.NewExporter()
//	err := exporter.Export(elements, os.Stdout)
package export
