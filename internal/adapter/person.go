// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"fmt"
	"strings"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// PersonDoc is the on-disk representation of one team member: one
// YAML document per file under content/people/.
type PersonDoc struct {
	// ID is the stable record identifier. Empty derives it from the
	// filename.
	ID string `yaml:"id"`

	// Name is the person's display name.
	Name string `yaml:"name"`

	// Role is the team_role taxonomy slug (e.g. "faculty",
	// "postdoc"). It becomes the record's category.
	Role string `yaml:"role"`

	// Expertise lists display-only expertise areas; they join the
	// search blob.
	Expertise []string `yaml:"expertise"`

	// Joined is the year the person joined, used for date sorting.
	Joined int `yaml:"joined,omitempty"`

	// Bio is searchable but not displayed in listings.
	Bio string `yaml:"bio,omitempty"`
}

// PersonAdapter maps PersonDocs to Records. People carry no citation
// fields.
type PersonAdapter struct{}

func (PersonAdapter) Kind() types.RecordKind { return types.KindPerson }

func (PersonAdapter) Dir() string { return "people" }

// Read parses one person document. Name is required.
func (a PersonAdapter) Read(path string) (types.Record, error) {
	var doc PersonDoc
	if err := readDoc(path, &doc); err != nil {
		return types.Record{}, err
	}
	if strings.TrimSpace(doc.Name) == "" {
		return types.Record{}, fmt.Errorf("%s: person has no name", path)
	}

	id := doc.ID
	if id == "" {
		id = idFromPath(path)
	}

	blobParts := []string{doc.Name}
	blobParts = append(blobParts, doc.Expertise...)
	blobParts = append(blobParts, doc.Bio)

	return types.Record{
		ID:         id,
		Kind:       types.KindPerson,
		Title:      doc.Name,
		SearchBlob: searchBlob(blobParts...),
		Category:   strings.ToLower(strings.TrimSpace(doc.Role)),
		Tags:       doc.Expertise,
		SortKeys: types.SortKeys{
			Year:       doc.Joined,
			TitleLower: strings.ToLower(doc.Name),
		},
	}, nil
}
