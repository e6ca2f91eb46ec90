package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/domain"
)

func TestRecorder_RecordsInOrder(t *testing.T) {
	r := memory.NewRecorder()
	node := domain.Node{"id": "n"}

	assert.NoError(t, r.CreateNodeField(domain.Field{Node: node, Name: "a", Value: 1}))
	assert.NoError(t, r.CreateNodeField(domain.Field{Node: node, Name: "b", Value: 2}))

	fields := r.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Name)
	assert.Equal(t, "b", fields[1].Name)
}

func TestRecorder_MirrorsFieldsOntoNode(t *testing.T) {
	r := memory.NewRecorder()
	node := domain.Node{"id": "n"}

	assert.NoError(t, r.CreateNodeField(domain.Field{Node: node, Name: "slug", Value: "/n"}))

	bag, ok := node["fields"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "/n", bag["slug"])
}

func TestRecorder_TolerationOfNilNode(t *testing.T) {
	r := memory.NewRecorder()
	assert.NoError(t, r.CreateNodeField(domain.Field{Name: "a", Value: 1}))
	assert.Len(t, r.Fields(), 1)
}

func TestRecorder_Reset(t *testing.T) {
	r := memory.NewRecorder()
	assert.NoError(t, r.CreateNodeField(domain.Field{Name: "a"}))
	r.Reset()
	assert.Empty(t, r.Fields())
}

func TestRecorder_FieldsReturnsCopy(t *testing.T) {
	r := memory.NewRecorder()
	assert.NoError(t, r.CreateNodeField(domain.Field{Name: "a"}))

	first := r.Fields()
	first[0].Name = "mutated"

	assert.Equal(t, "a", r.Fields()[0].Name)
}
