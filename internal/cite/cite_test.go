// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"strings"
	"testing"

	"github.com/pdiddy/listing-engine/pkg/types"
)

func sampleFields() types.CitationFields {
	return types.CitationFields{
		Authors: "Smith, J.",
		Title:   "Coastal Erosion",
		Year:    2022,
	}
}

func TestFormatAPA(t *testing.T) {
	got := Format(sampleFields(), types.StyleAPA)
	want := "Smith, J. (2022). Coastal Erosion."
	if got != want {
		t.Errorf("Format(apa) = %q, want %q", got, want)
	}
}

func TestFormatMLAAndChicagoShareShape(t *testing.T) {
	want := `Smith, J. "Coastal Erosion." 2022.`
	if got := Format(sampleFields(), types.StyleMLA); got != want {
		t.Errorf("Format(mla) = %q, want %q", got, want)
	}
	if got := Format(sampleFields(), types.StyleChicago); got != want {
		t.Errorf("Format(chicago) = %q, want %q", got, want)
	}
}

func TestFormatBibTeX(t *testing.T) {
	got := Format(sampleFields(), types.StyleBibTeX)

	if !strings.HasPrefix(got, "@article{coastal_erosion2022,") {
		t.Errorf("bibtex block should open with the derived key, got:\n%s", got)
	}
	for _, line := range []string{
		"author = {Smith, J.}",
		"title = {Coastal Erosion}",
		"year = {2022}",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("bibtex block missing %q:\n%s", line, got)
		}
	}
	if !strings.HasSuffix(got, "}") {
		t.Errorf("bibtex block should close, got:\n%s", got)
	}
}

func TestFormatDeterministic(t *testing.T) {
	for _, style := range []types.CitationStyle{
		types.StyleAPA, types.StyleMLA, types.StyleChicago, types.StyleBibTeX,
	} {
		first := Format(sampleFields(), style)
		second := Format(sampleFields(), style)
		if first != second {
			t.Errorf("Format(%s) is not deterministic: %q vs %q", style, first, second)
		}
	}
}

func TestFormatMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		fields types.CitationFields
		style  types.CitationStyle
		want   string
	}{
		{
			"missing year renders empty segment",
			types.CitationFields{Authors: "Smith, J.", Title: "Coastal Erosion"},
			types.StyleAPA,
			"Smith, J. (). Coastal Erosion.",
		},
		{
			"missing authors renders empty segment",
			types.CitationFields{Title: "Coastal Erosion", Year: 2022},
			types.StyleAPA,
			" (2022). Coastal Erosion.",
		},
		{
			"all fields missing still renders",
			types.CitationFields{},
			types.StyleMLA,
			`. "." .`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.fields, tt.style); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeStyle(t *testing.T) {
	tests := []struct {
		in   types.CitationStyle
		want types.CitationStyle
	}{
		{types.StyleAPA, types.StyleAPA},
		{types.StyleMLA, types.StyleMLA},
		{types.StyleChicago, types.StyleChicago},
		{types.StyleBibTeX, types.StyleBibTeX},
		{"harvard", types.StyleAPA},
		{"", types.StyleAPA},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := NormalizeStyle(tt.in); got != tt.want {
				t.Errorf("NormalizeStyle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCitationKey(t *testing.T) {
	tests := []struct {
		name  string
		title string
		year  int
		want  string
	}{
		{"lowered and underscored", "Coastal Erosion", 2022, "coastal_erosion2022"},
		{"whitespace collapsed", "  Wave   Study  ", 2023, "wave_study2023"},
		{"truncated to prefix length", "A Very Long Title About Sediment Transport", 2020, "a_very_long_title_ab2020"},
		{"zero year omitted", "Coastal Erosion", 0, "coastal_erosion"},
		{"empty title", "", 2021, "2021"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CitationKey(tt.title, tt.year); got != tt.want {
				t.Errorf("CitationKey(%q, %d) = %q, want %q", tt.title, tt.year, got, tt.want)
			}
		})
	}
}

func TestCitationKeyDeterministic(t *testing.T) {
	first := CitationKey("Coastal Erosion", 2022)
	second := CitationKey("Coastal Erosion", 2022)
	if first != second {
		t.Errorf("citation key not deterministic: %q vs %q", first, second)
	}
}

func TestRequestRender(t *testing.T) {
	store := []types.Record{
		{ID: "pub-1", Kind: types.KindPublication, Title: "Coastal Erosion", Citation: &types.CitationFields{
			Authors: "Smith, J.", Title: "Coastal Erosion", Year: 2022,
		}},
		{ID: "person-1", Kind: types.KindPerson, Title: "Dana Lee"},
	}

	req := Request{RecordID: "pub-1", Style: types.StyleAPA}
	got, err := req.Render(store)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "Smith, J. (2022). Coastal Erosion." {
		t.Errorf("Render = %q", got)
	}

	// Switching the style re-renders from the same record.
	req.Style = types.StyleBibTeX
	bib, err := req.Render(store)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(bib, "coastal_erosion2022") {
		t.Errorf("bibtex render missing key: %s", bib)
	}

	if _, err := (Request{RecordID: "person-1"}).Render(store); err == nil {
		t.Error("citing a record without citation fields should fail")
	}
	if _, err := (Request{RecordID: "ghost"}).Render(store); err == nil {
		t.Error("citing an unknown record should fail")
	}
}
