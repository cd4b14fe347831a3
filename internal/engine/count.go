// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// Counter derives the visible-count label for one listing surface.
// The nouns differ per page ("publication"/"publications",
// "member"/"members"), so each page constructs its own Counter.
type Counter struct {
	Singular string
	Plural   string
}

// Tally is a visible count and its pluralized label.
type Tally struct {
	N     int    `json:"n" yaml:"n"`
	Label string `json:"label" yaml:"label"`
}

// Count returns the tally for a projected view. The label is singular
// exactly when n == 1; everything else, including zero, is plural
// (binary pluralization, no CLDR rules). Count is a pure function of
// its input and must be recomputed from the latest projection, never
// cached across state changes.
func (c Counter) Count(visible []types.Record) Tally {
	n := len(visible)
	noun := c.Plural
	if n == 1 {
		noun = c.Singular
	}
	return Tally{N: n, Label: fmt.Sprintf("%d %s", n, noun)}
}

// PublicationCounter and PeopleCounter are the counters for the two
// built-in listing surfaces.
var (
	PublicationCounter = Counter{Singular: "publication", Plural: "publications"}
	PeopleCounter      = Counter{Singular: "team member", Plural: "team members"}
)
