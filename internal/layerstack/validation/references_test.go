package validation

import (
	"testing"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_SampleIsValid(t *testing.T) {
	r := Validate(domain.SampleProject())
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
}

func TestValidate_OrphanedReferences(t *testing.T) {
	p := domain.SampleProject()
	p.Layers[0].Substacks[1].Connections = []int{99}
	p.Layers[3].Dependencies = []int{3, 42}

	r := Validate(p)
	require.False(t, r.Valid)
	require.Len(t, r.Errors, 2)

	assert.Equal(t, IssueOrphanedReference, r.Errors[0].Type)
	assert.Equal(t, "Layer 0: React UI > Substack 1: State Management", r.Errors[0].Context)
	assert.Equal(t, 99, r.Errors[0].Reference)
	assert.Equal(t, "Connection references non-existent layer ID: 99", r.Errors[0].Message)

	assert.Equal(t, "Layer 3: PostgreSQL", r.Errors[1].Context)
	assert.Equal(t, 42, r.Errors[1].Reference)
}

func TestValidate_DuplicateAndInvalidIDs(t *testing.T) {
	p := domain.SampleProject()
	p.Layers[2].Substacks = []domain.Layer{{ID: 11, Name: "Dup", Type: domain.TypeBackend}}
	p.Layers[3].ID = 0
	p.Layers[3].Type = "Mainframe"
	p.Layers[2].Connections = nil

	r := Validate(p)
	require.False(t, r.Valid)

	types := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, IssueDuplicateID)
	assert.Contains(t, types, IssueInvalidID)
	assert.Contains(t, types, IssueUnknownType)
	assert.NotContains(t, types, IssueOrphanedReference)
}

func TestReferences(t *testing.T) {
	p := domain.SampleProject()
	p.Layers[0].Substacks[0].Connections = []int{3}

	refs := References(p, 3)
	require.Len(t, refs.Connections, 2)
	assert.Equal(t, 11, refs.Connections[0].LayerID)
	assert.Equal(t, "Layer 0: React UI > Substack 0: Components", refs.Connections[0].Context)
	assert.Equal(t, 2, refs.Connections[1].LayerID)

	require.Len(t, refs.Dependencies, 1)
	assert.Equal(t, 4, refs.Dependencies[0].LayerID)
	assert.False(t, refs.Empty())

	assert.True(t, References(p, 11).Empty())
}

func TestValidate_DependencyCycles(t *testing.T) {
	p := domain.SampleProject()
	p.Layers[1].Dependencies = []int{1, 4} // REST API -> PostgreSQL -> Business Logic -> REST API
	p.Layers[0].Substacks[0].Dependencies = []int{11}

	r := Validate(p)
	assert.True(t, r.Valid, "cycles are warnings")
	require.Len(t, r.Errors, 2)

	for _, issue := range r.Errors {
		assert.Equal(t, IssueDependencyCycle, issue.Type)
		assert.Equal(t, SeverityWarning, issue.Severity)
	}

	var messages []string
	for _, issue := range r.Errors {
		messages = append(messages, issue.Message)
	}
	assert.Contains(t, messages, "Layer depends on itself: 11 (Components)")
	assert.Contains(t, messages, "Layers depend on each other: 2 (REST API), 3 (Business Logic), 4 (PostgreSQL)")

	_, critical := r.FirstCritical()
	assert.False(t, critical)
}
