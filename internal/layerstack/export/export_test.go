package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestToYAML(t *testing.T) {
	out, err := ToYAML(domain.SampleProject())
	require.NoError(t, err)

	var back domain.Project
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "Sample Project", back.Name)
	assert.Equal(t, []int{1, 11, 12, 2, 3, 4}, back.LayerIDs())
	assert.Contains(t, string(out), "technology: React 18, TypeScript")
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(domain.SampleProject())
	require.NoError(t, err)

	var back domain.Project
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, domain.SampleProject(), back)
}

func TestToDOT(t *testing.T) {
	p := domain.SampleProject()
	p.Name = `My "quoted" project`
	p.Layers[3].Visible = false

	dot := ToDOT(p)

	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Contains(t, dot, `label="My \"quoted\" project"`)
	assert.Contains(t, dot, `"L1" [label="React UI\n(Frontend)", fillcolor="#10b981"`)
	assert.Contains(t, dot, `subgraph "cluster_1" {`)
	assert.Contains(t, dot, `"L11" [label="Components\n(Frontend)"`)
	assert.Contains(t, dot, `"L1" -> "L2" [label="connects"];`)
	assert.Contains(t, dot, `"L2" -> "L1" [label="depends on", style=dashed];`)
	assert.Contains(t, dot, `"L4" [label="PostgreSQL\n(Database)", fillcolor="#8b5cf6", fontcolor="white", style="rounded,dashed"];`)
	assert.NotContains(t, dot, "cluster_2")
}
