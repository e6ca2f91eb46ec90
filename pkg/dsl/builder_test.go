package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
)

func TestBuilder_DescriptorAndFieldOrder(t *testing.T) {
	descriptors := dsl.New().
		Always().
		Field("first").Default(1).
		Field("second").Default(2).
		When(func(domain.Node, domain.GetNodeFunc) bool { return false }).
		Field("third").
		Build()

	assert.Len(t, descriptors, 2)
	assert.Len(t, descriptors[0].Fields, 2)
	assert.Len(t, descriptors[1].Fields, 1)

	assert.Equal(t, "first", descriptors[0].Fields[0].Name)
	assert.Equal(t, "second", descriptors[0].Fields[1].Name)
	assert.Equal(t, "third", descriptors[1].Fields[0].Name)

	assert.Equal(t, 1, descriptors[0].Fields[0].Default)
	assert.Equal(t, 2, descriptors[0].Fields[1].Default)
}

func TestBuilder_MatchPredicate(t *testing.T) {
	descriptors := dsl.New().
		Match(map[string]any{"internal.type": "Markdown"}).
		Field("slug").
		Build()

	pred := descriptors[0].Predicate
	assert.NotNil(t, pred)

	markdown := domain.Node{"internal": map[string]any{"type": "Markdown"}}
	yaml := domain.Node{"internal": map[string]any{"type": "Yaml"}}
	bare := domain.Node{}

	assert.True(t, pred(markdown, nil))
	assert.False(t, pred(yaml, nil))
	assert.False(t, pred(bare, nil))
}

func TestBuilder_FieldConfiguration(t *testing.T) {
	getter := func(domain.Node, any, domain.Actions, domain.GetNodeFunc) any { return "g" }
	transform := func(v any, _ domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) any { return v }
	validate := func(any, domain.Node, any, domain.Actions, domain.GetNodeFunc) bool { return true }
	setter := func(any, domain.Node, any, domain.Actions, domain.GetNodeFunc) error { return nil }

	descriptors := dsl.New().
		Always().
		Field("a").
		Getter(getter).
		Default("d").
		Transform(transform).
		Validate(validate).
		Computed().
		Setter(setter).
		Build()

	fields := descriptors[0].Fields
	assert.Len(t, fields, 2)

	assert.NotNil(t, fields[0].Getter)
	assert.Equal(t, "d", fields[0].Default)
	assert.NotNil(t, fields[0].Transform)
	assert.NotNil(t, fields[0].Validate)
	assert.Nil(t, fields[0].Setter)

	assert.Empty(t, fields[1].Name)
	assert.NotNil(t, fields[1].Setter)
}

func TestBuilder_AlwaysMatchesEverything(t *testing.T) {
	descriptors := dsl.New().Always().Field("x").Build()
	assert.True(t, descriptors[0].Predicate(domain.Node{}, nil))
	assert.True(t, descriptors[0].Predicate(nil, nil))
}
