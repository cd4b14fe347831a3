// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/listing-engine/pkg/types"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPublicationAdapterRead(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "wave-study.yaml", `
id: pub-wave-2023
title: Wave Study
authors: Smith, J. and Lee, K.
year: 2023
type: Journal
keywords: [coastal, dynamics]
abstract: Long-term observations of nearshore wave climate.
`)

	rec, err := PublicationAdapter{}.Read(path)
	require.NoError(t, err)

	assert.Equal(t, "pub-wave-2023", rec.ID)
	assert.Equal(t, types.KindPublication, rec.Kind)
	assert.Equal(t, "Wave Study", rec.Title)
	assert.Equal(t, "journal", rec.Category, "taxonomy slug is lowercased")
	assert.Equal(t, []string{"coastal", "dynamics"}, rec.Tags)
	assert.Equal(t, 2023, rec.SortKeys.Year)
	assert.Equal(t, "wave study", rec.SortKeys.TitleLower)

	// The blob is the lowercase concatenation of every searchable field.
	assert.Contains(t, rec.SearchBlob, "wave study")
	assert.Contains(t, rec.SearchBlob, "smith, j.")
	assert.Contains(t, rec.SearchBlob, "coastal")
	assert.Contains(t, rec.SearchBlob, "nearshore wave climate")
	assert.Equal(t, strings.ToLower(rec.SearchBlob), rec.SearchBlob, "blob must be pre-lowered")

	require.NotNil(t, rec.Citation)
	assert.Equal(t, "Smith, J. and Lee, K.", rec.Citation.Authors)
	assert.Equal(t, 2023, rec.Citation.Year)
}

func TestPublicationAdapterIDFromFilename(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "drone-survey.yaml", `
title: Drone Survey
year: 2021
type: conference
`)

	rec, err := PublicationAdapter{}.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "drone-survey", rec.ID)
}

func TestPublicationAdapterRequiresTitle(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "untitled.yaml", `
authors: Nobody
year: 2020
`)

	_, err := PublicationAdapter{}.Read(path)
	assert.ErrorContains(t, err, "no title")
}

func TestPublicationAdapterBadYAML(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "broken.yaml", "title: [unclosed")

	_, err := PublicationAdapter{}.Read(path)
	assert.ErrorContains(t, err, "parsing")
}

func TestPersonAdapterRead(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "dana-lee.yaml", `
name: Dana Lee
role: Faculty
expertise: [sediment transport, remote sensing]
joined: 2018
bio: Works on coastal morphodynamics.
`)

	rec, err := PersonAdapter{}.Read(path)
	require.NoError(t, err)

	assert.Equal(t, "dana-lee", rec.ID, "missing id derives from filename")
	assert.Equal(t, types.KindPerson, rec.Kind)
	assert.Equal(t, "Dana Lee", rec.Title)
	assert.Equal(t, "faculty", rec.Category)
	assert.Equal(t, 2018, rec.SortKeys.Year)
	assert.Equal(t, "dana lee", rec.SortKeys.TitleLower)
	assert.Contains(t, rec.SearchBlob, "sediment transport")
	assert.Contains(t, rec.SearchBlob, "morphodynamics")
	assert.Nil(t, rec.Citation, "people carry no citation fields")
}

func TestPersonAdapterRequiresName(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "anon.yaml", `
role: postdoc
`)

	_, err := PersonAdapter{}.Read(path)
	assert.ErrorContains(t, err, "no name")
}

func TestAll(t *testing.T) {
	adapters := All()
	require.Len(t, adapters, 2)
	assert.Equal(t, types.KindPublication, adapters[0].Kind())
	assert.Equal(t, "publications", adapters[0].Dir())
	assert.Equal(t, types.KindPerson, adapters[1].Kind())
	assert.Equal(t, "people", adapters[1].Dir())
}

func TestSearchBlob(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"joins and lowers", []string{"Wave Study", "Smith, J."}, "wave study smith, j."},
		{"drops empty parts", []string{"Title", "", "  ", "keyword"}, "title keyword"},
		{"empty input", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchBlob(tt.parts...))
		})
	}
}
