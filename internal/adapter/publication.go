// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"fmt"
	"strings"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// PublicationDoc is the on-disk representation of one publication:
// one YAML document per file under content/publications/.
type PublicationDoc struct {
	// ID is the stable record identifier. Empty derives it from the
	// filename.
	ID string `yaml:"id"`

	// Title is the publication title.
	Title string `yaml:"title"`

	// Authors is the author line as free text, not a structured
	// list. The source platform stores it that way and the citation
	// formatter treats it as one opaque string.
	Authors string `yaml:"authors"`

	// Year is the publication year.
	Year int `yaml:"year"`

	// Type is the publication_type taxonomy slug (e.g. "journal",
	// "conference"). It becomes the record's category.
	Type string `yaml:"type"`

	// Keywords are display-only tags; they join the search blob.
	Keywords []string `yaml:"keywords"`

	// Abstract is searchable but not displayed in listings.
	Abstract string `yaml:"abstract,omitempty"`
}

// PublicationAdapter maps PublicationDocs to Records.
type PublicationAdapter struct{}

func (PublicationAdapter) Kind() types.RecordKind { return types.KindPublication }

func (PublicationAdapter) Dir() string { return "publications" }

// Read parses one publication document. Title is required; everything
// else degrades to an empty segment downstream.
func (a PublicationAdapter) Read(path string) (types.Record, error) {
	var doc PublicationDoc
	if err := readDoc(path, &doc); err != nil {
		return types.Record{}, err
	}
	if strings.TrimSpace(doc.Title) == "" {
		return types.Record{}, fmt.Errorf("%s: publication has no title", path)
	}

	id := doc.ID
	if id == "" {
		id = idFromPath(path)
	}

	blobParts := []string{doc.Title, doc.Authors}
	blobParts = append(blobParts, doc.Keywords...)
	blobParts = append(blobParts, doc.Abstract)

	return types.Record{
		ID:         id,
		Kind:       types.KindPublication,
		Title:      doc.Title,
		SearchBlob: searchBlob(blobParts...),
		Category:   strings.ToLower(strings.TrimSpace(doc.Type)),
		Tags:       doc.Keywords,
		SortKeys: types.SortKeys{
			Year:       doc.Year,
			TitleLower: strings.ToLower(doc.Title),
		},
		Citation: &types.CitationFields{
			Authors: doc.Authors,
			Title:   doc.Title,
			Year:    doc.Year,
		},
	}, nil
}
