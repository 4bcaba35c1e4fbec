// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

func TestLoad(t *testing.T) {
	kb := Load(io.Discard)

	stats := kb.Stats()
	assert.Equal(t, 16, stats.Events)
	assert.Equal(t, 9, stats.People)
	assert.Equal(t, 5, stats.Organizations)

	ids := make(map[string]bool)
	for _, e := range kb.Events {
		assert.NotEmpty(t, e.Name)
		assert.NotZero(t, e.Year)
		assert.GreaterOrEqual(t, e.EndYear, e.Year, "event %s end year precedes start", e.Name)
		assert.Equal(t, types.SourceCurated, e.Source)
		assert.False(t, ids[e.ID], "duplicate event id %s", e.ID)
		ids[e.ID] = true
	}
	for _, p := range kb.People {
		assert.NotZero(t, p.BirthYear)
		if p.DeathYear != 0 {
			assert.Greater(t, p.DeathYear, p.BirthYear, "person %s died before birth", p.Name)
		}
	}
}

func TestEventsInDomain(t *testing.T) {
	kb := Load(io.Discard)

	tests := []struct {
		name      string
		domain    string
		startYear int
		endYear   int
		want      int
	}{
		{name: "wars of the twentieth century", domain: "military", startYear: 1900, endYear: 1999, want: 4},
		{name: "inclusive start bound", domain: "military", startYear: 1914, endYear: 1918, want: 1},
		{name: "range excludes all", domain: "military", startYear: 1800, endYear: 1900, want: 0},
		{name: "unknown domain", domain: "sports", startYear: 1900, endYear: 2025, want: 0},
		{name: "space milestones", domain: "science", startYear: 1957, endYear: 1969, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kb.EventsInDomain(tt.domain, tt.startYear, tt.endYear)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestPeopleInField(t *testing.T) {
	kb := Load(io.Discard)

	physicists := kb.PeopleInField("Physics", 1879, 1879)
	require.Len(t, physicists, 1)
	assert.Equal(t, "Albert Einstein", physicists[0].Name)

	assert.Empty(t, kb.PeopleInField("Physics", 1000, 1800))
	assert.Len(t, kb.PeopleInField("Technology", 1900, 2000), 3)
}

func TestExport(t *testing.T) {
	kb := Load(io.Discard)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "export.yaml")
	require.NoError(t, kb.ExportYAML(yamlPath))

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML Export
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Len(t, fromYAML.Events, 16)
	assert.Len(t, fromYAML.People, 9)
	assert.Equal(t, types.SourceCurated, fromYAML.Source)

	jsonPath := filepath.Join(dir, "export.json")
	require.NoError(t, kb.ExportJSON(jsonPath))

	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON Export
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Len(t, fromJSON.Organizations, 5)
	assert.Equal(t, fromYAML.Stats, fromJSON.Stats)
}
