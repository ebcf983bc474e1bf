package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tsawler/tablefind/model"
)

func testElements() []model.Element {
	return []model.Element{
		{
			DocumentName: "report.pdf",
			SectionName:  "Introduction",
			Type:         model.ElementTypeParagraph,
			Content:      "Opening text.",
			PageNumber:   1,
			BBox:         model.NewRect(50, 50, 400, 70),
			Meta:         model.ElementMeta{Length: 13, WordCount: 2},
		},
		{
			DocumentName: "report.pdf",
			SectionName:  "Table 1",
			Type:         model.ElementTypeTable,
			Content:      "Q1\nQ2\nQ3",
			PageNumber:   1,
			BBox:         model.NewRect(100, 300, 250, 325),
			Meta:         model.ElementMeta{BlockCount: 3},
		},
	}
}

func TestExporter_JSON(t *testing.T) {
	e := NewExporter()
	var buf bytes.Buffer

	if err := e.Export(testElements(), &buf); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	var decoded []model.Element
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d elements, want 2", len(decoded))
	}
	if decoded[1].Type != model.ElementTypeTable {
		t.Errorf("element 1 type = %v, want table", decoded[1].Type)
	}
	if decoded[1].BBox != model.NewRect(100, 300, 250, 325) {
		t.Errorf("element 1 bbox round-trip failed: %+v", decoded[1].BBox)
	}

	// element_type serializes as its string name.
	if !strings.Contains(buf.String(), `"element_type": "table"`) {
		t.Error("JSON output should carry string element types")
	}
}

func TestExporter_JSON_Empty(t *testing.T) {
	e := NewExporter()
	var buf bytes.Buffer

	if err := e.Export(nil, &buf); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty export = %q, want []", got)
	}
}

func TestExporter_JSONL(t *testing.T) {
	e := NewExporterWithConfig(Config{Format: FormatJSONL})
	var buf bytes.Buffer

	if err := e.Export(testElements(), &buf); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		var elem model.Element
		if err := json.Unmarshal([]byte(line), &elem); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestExporter_CSV(t *testing.T) {
	e := NewExporterWithConfig(Config{Format: FormatCSV, IncludeHeader: true})
	var buf bytes.Buffer

	if err := e.Export(testElements(), &buf); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if records[0][0] != "document_name" || records[0][2] != "element_type" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][2] != "paragraph" {
		t.Errorf("row 1 type = %q, want paragraph", records[1][2])
	}
	// Multiline table content survives CSV quoting.
	if records[2][3] != "Q1\nQ2\nQ3" {
		t.Errorf("row 2 content = %q, want the newline-joined cells", records[2][3])
	}
}

func TestFormat_Strings(t *testing.T) {
	tests := []struct {
		format Format
		name   string
		ext    string
	}{
		{FormatJSON, "json", ".json"},
		{FormatJSONL, "jsonl", ".jsonl"},
		{FormatCSV, "csv", ".csv"},
		{Format(99), "unknown", ".txt"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.format.FileExtension(); got != tt.ext {
			t.Errorf("FileExtension() = %q, want %q", got, tt.ext)
		}
	}
}
