package drift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootplan/internal/config"
	"bootplan/internal/window"
)

func TestCompare_NoDrift(t *testing.T) {
	m := &config.Manifest{Services: []*config.Service{
		{Name: "db", Command: "pg_ctl start", Labels: map[string]string{"tier": "data"}},
	}}

	assert.Nil(t, Compare(m, m))
}

func TestCompare_AddedAndRemovedServices(t *testing.T) {
	oldM := &config.Manifest{Services: []*config.Service{{Name: "db"}, {Name: "legacy"}}}
	newM := &config.Manifest{Services: []*config.Service{{Name: "db"}, {Name: "api"}}}

	changes := Compare(oldM, newM)

	require.Len(t, changes, 2)
	assert.Equal(t, Change{Path: "api", Op: OpAdded}, changes[0])
	assert.Equal(t, Change{Path: "legacy", Op: OpRemoved}, changes[1])
}

func TestCompare_FieldChanges(t *testing.T) {
	oldM := &config.Manifest{Services: []*config.Service{{
		Name:        "api",
		Description: "old",
		Command:     "run",
		DependsOn:   []string{"db"},
		Labels:      map[string]string{"tier": "web", "team": "core"},
		Maintenance: []window.Window{{Start: 0, End: 60}},
	}}}
	newM := &config.Manifest{Services: []*config.Service{{
		Name:        "api",
		Description: "new",
		DependsOn:   []string{"db", "cache"},
		Labels:      map[string]string{"tier": "edge", "region": "eu"},
		Maintenance: []window.Window{{Start: 120, End: 240}},
	}}}

	changes := Compare(oldM, newM)

	byPath := make(map[string]Change, len(changes))
	for _, c := range changes {
		byPath[c.Path] = c
	}

	assert.Equal(t, Change{Path: "api.description", Op: OpChanged, Old: "old", New: "new"}, byPath["api.description"])
	assert.Equal(t, Change{Path: "api.command", Op: OpRemoved, Old: "run"}, byPath["api.command"])
	assert.Equal(t, Change{Path: "api.depends_on", Op: OpChanged, Old: "db", New: "db, cache"}, byPath["api.depends_on"])
	assert.Equal(t, Change{Path: "api.labels.tier", Op: OpChanged, Old: "web", New: "edge"}, byPath["api.labels.tier"])
	assert.Equal(t, Change{Path: "api.labels.team", Op: OpRemoved, Old: "core"}, byPath["api.labels.team"])
	assert.Equal(t, Change{Path: "api.labels.region", Op: OpAdded, New: "eu"}, byPath["api.labels.region"])
	assert.Equal(t, Change{Path: "api.maintenance", Op: OpChanged, Old: "00:00-01:00", New: "02:00-04:00"}, byPath["api.maintenance"])
	assert.Len(t, changes, 7)
}

func TestChange_String(t *testing.T) {
	assert.Equal(t, "+ api", Change{Path: "api", Op: OpAdded}.String())
	assert.Equal(t, "+ api.labels.region = eu", Change{Path: "api.labels.region", Op: OpAdded, New: "eu"}.String())
	assert.Equal(t, "- legacy", Change{Path: "legacy", Op: OpRemoved}.String())
	assert.Equal(t, "~ api.command: run -> serve", Change{Path: "api.command", Op: OpChanged, Old: "run", New: "serve"}.String())
}
