package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tsawler/tablefind/model"
)

// Format defines the available export formats.
type Format int

const (
	// FormatJSON exports a single JSON array.
	FormatJSON Format = iota
	// FormatJSONL exports JSON Lines (one object per line).
	FormatJSONL
	// FormatCSV exports comma-separated values with a header row.
	FormatCSV
)

// String returns a human-readable representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format.
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatJSONL:
		return ".jsonl"
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// Config holds export configuration.
type Config struct {
	// Format selects the output format.
	Format Format

	// PrettyPrint indents JSON output (ignored for CSV).
	PrettyPrint bool

	// IncludeHeader writes a header row for CSV output.
	IncludeHeader bool
}

// DefaultConfig returns the default export configuration: pretty-printed
// JSON, the shape the original consumer reads.
func DefaultConfig() Config {
	return Config{
		Format:        FormatJSON,
		PrettyPrint:   true,
		IncludeHeader: true,
	}
}

// Exporter serializes elements in a configured format.
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default configuration.
func NewExporter() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration.
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// Export writes the elements to w in the configured format.
func (e *Exporter) Export(elements []model.Element, w io.Writer) error {
	switch e.config.Format {
	case FormatJSON:
		return e.exportJSON(elements, w)
	case FormatJSONL:
		return e.exportJSONL(elements, w)
	case FormatCSV:
		return e.exportCSV(elements, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile writes the elements to the named file.
func (e *Exporter) ExportToFile(elements []model.Element, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := e.Export(elements, f); err != nil {
		return err
	}
	return f.Close()
}

func (e *Exporter) exportJSON(elements []model.Element, w io.Writer) error {
	enc := json.NewEncoder(w)
	if e.config.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	if elements == nil {
		elements = []model.Element{}
	}
	return enc.Encode(elements)
}

func (e *Exporter) exportJSONL(elements []model.Element, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, elem := range elements {
		if err := enc.Encode(elem); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) exportCSV(elements []model.Element, w io.Writer) error {
	cw := csv.NewWriter(w)

	if e.config.IncludeHeader {
		header := []string{
			"document_name", "section_name", "element_type", "content",
			"page_number", "x0", "y0", "x1", "y1",
		}
		if err := cw.Write(header); err != nil {
			return err
		}
	}

	for _, elem := range elements {
		record := []string{
			elem.DocumentName,
			elem.SectionName,
			elem.Type.String(),
			elem.Content,
			strconv.Itoa(elem.PageNumber),
			formatCoord(elem.BBox.X0),
			formatCoord(elem.BBox.Y0),
			formatCoord(elem.BBox.X1),
			formatCoord(elem.BBox.Y1),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
