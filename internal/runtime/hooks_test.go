package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/espalier/internal/runtime"
	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/domain"
)

func TestAttach_HooksFireForImplicitCommits(t *testing.T) {
	var matches []int
	var created []string

	hooks := domain.LifecycleHooks{
		OnDescriptorMatch: func(e *domain.DescriptorEvent) {
			matches = append(matches, e.Index)
			assert.Equal(t, "n1", e.NodeID)
		},
		OnFieldCreate: func(e *domain.FieldEvent) {
			created = append(created, e.Name)
		},
	}

	attacher := runtime.New(runtime.WithLifecycleHooks(hooks))

	descriptors := []domain.Descriptor{
		{Predicate: never, Fields: []domain.FieldSpec{{Name: "skipped", Default: 1}}},
		{Predicate: always, Fields: []domain.FieldSpec{{Name: "a", Default: 1}, {Name: "b", Default: 2}}},
	}

	node := domain.Node{"id": "n1"}
	assert.NoError(t, attacher.Attach(node, memory.NewRecorder(), nil, descriptors, nil))

	assert.Equal(t, []int{1}, matches)
	assert.Equal(t, []string{"a", "b"}, created)
}

func TestAttach_NoCreateHookForSetterCommits(t *testing.T) {
	createHookFired := false
	hooks := domain.LifecycleHooks{
		OnFieldCreate: func(*domain.FieldEvent) { createHookFired = true },
	}

	attacher := runtime.New(runtime.WithLifecycleHooks(hooks))

	descriptors := []domain.Descriptor{{
		Predicate: always,
		Fields: []domain.FieldSpec{{
			Name: "a",
			Setter: func(value any, n domain.Node, _ any, actions domain.Actions, _ domain.GetNodeFunc) error {
				return actions.CreateNodeField(domain.Field{Node: n, Name: "custom", Value: value})
			},
		}},
	}}

	recorder := memory.NewRecorder()
	assert.NoError(t, attacher.Attach(domain.Node{}, recorder, nil, descriptors, nil))

	// The setter's call went through, but the engine only observes its own commits.
	assert.Len(t, recorder.Fields(), 1)
	assert.False(t, createHookFired)
}
