// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite renders bibliographic citations for publication records.
// Implements: prd004-citation (R1-R3);
//
//	docs/ARCHITECTURE § Citation.
package cite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// bibkeyPrefixLen is the fixed truncation length for the title part of
// a BibTeX citation key.
const bibkeyPrefixLen = 20

// NormalizeStyle maps unknown style identifiers to StyleAPA. Style
// values reach the formatter from UI state, so a stale or corrupted
// identifier fails closed instead of failing the render.
func NormalizeStyle(style types.CitationStyle) types.CitationStyle {
	switch style {
	case types.StyleAPA, types.StyleMLA, types.StyleChicago, types.StyleBibTeX:
		return style
	default:
		return types.StyleAPA
	}
}

// Format renders the citation for fields in the given style. It is
// pure and total: no I/O, no errors. Missing fields degrade to empty
// segments rather than failing, and repeated calls with identical
// input produce identical output, so switching styles on an open
// citation dialog re-renders deterministically.
func Format(f types.CitationFields, style types.CitationStyle) string {
	year := yearSegment(f.Year)

	switch NormalizeStyle(style) {
	case types.StyleMLA, types.StyleChicago:
		// Chicago intentionally shares the MLA shape here; this is a
		// display citation, not a bibliographically rigorous one.
		return fmt.Sprintf("%s. \"%s.\" %s.", f.Authors, f.Title, year)
	case types.StyleBibTeX:
		return formatBibTeX(f)
	default:
		return fmt.Sprintf("%s (%s). %s.", f.Authors, year, f.Title)
	}
}

// formatBibTeX renders an @article block with a deterministic citation
// key derived from the title and year.
func formatBibTeX(f types.CitationFields) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", CitationKey(f.Title, f.Year))
	fmt.Fprintf(&b, "  author = {%s},\n", f.Authors)
	fmt.Fprintf(&b, "  title = {%s},\n", f.Title)
	fmt.Fprintf(&b, "  year = {%s}\n", yearSegment(f.Year))
	b.WriteString("}")
	return b.String()
}

// CitationKey derives the BibTeX key: the title lowercased with
// whitespace collapsed to underscores, truncated to a fixed prefix
// length, concatenated with the year. The same input always yields the
// same key.
func CitationKey(title string, year int) string {
	slug := strings.Join(strings.Fields(strings.ToLower(title)), "_")
	if len(slug) > bibkeyPrefixLen {
		slug = slug[:bibkeyPrefixLen]
	}
	if year == 0 {
		return slug
	}
	return slug + strconv.Itoa(year)
}

// yearSegment renders the year, or an empty segment when absent.
func yearSegment(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
