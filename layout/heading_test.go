package layout

import "testing"

func TestTitleDetector_IsTitle(t *testing.T) {
	d := NewTitleDetector()

	tests := []struct {
		text string
		want bool
	}{
		{"EXECUTIVE SUMMARY", true},
		{"1. Introduction", true},
		{"3.  Results And Discussion", true},
		{"Quarterly Results", true},
		{"Introduction", true},
		{"  Risk Factors  ", true}, // surrounding whitespace trimmed
		{"", false},
		{"plain body text continues here", false},
		{"The quick brown fox jumps", false}, // mixed case, not Title Case
		{"revenue grew 4% year over year.", false},
		{"See note 12 below", false},
	}

	for _, tt := range tests {
		if got := d.IsTitle(tt.text); got != tt.want {
			t.Errorf("IsTitle(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
