// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// Request is the ephemeral state of one open citation dialog: which
// record is being cited and in which style. A request is created when
// the user asks for a citation and discarded when the dialog closes;
// at most one request is active per session.
type Request struct {
	RecordID string
	Style    types.CitationStyle
}

// Render formats the citation for the requested record against the
// given store. Switching Style and re-rendering is idempotent: the
// output depends only on the record's citation fields and the style.
func (r Request) Render(store []types.Record) (string, error) {
	for _, rec := range store {
		if rec.ID != r.RecordID {
			continue
		}
		if rec.Citation == nil {
			return "", fmt.Errorf("record %s has no citation fields", r.RecordID)
		}
		return Format(*rec.Citation, r.Style), nil
	}
	return "", fmt.Errorf("record %s not found", r.RecordID)
}
