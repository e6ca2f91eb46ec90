package dsl

import (
	"reflect"

	"github.com/aretw0/espalier/pkg/domain"
)

// Builder accumulates descriptors in declaration order.
type Builder struct {
	descriptors []*DescriptorBuilder
}

// New creates a new descriptor set builder.
func New() *Builder {
	return &Builder{}
}

// When starts a new descriptor guarded by pred. Descriptors are evaluated in
// the order they were declared.
func (b *Builder) When(pred domain.Predicate) *DescriptorBuilder {
	db := &DescriptorBuilder{
		desc:    domain.Descriptor{Predicate: pred},
		builder: b,
	}
	b.descriptors = append(b.descriptors, db)
	return db
}

// Always starts a descriptor that matches every node.
func (b *Builder) Always() *DescriptorBuilder {
	return b.When(func(domain.Node, domain.GetNodeFunc) bool { return true })
}

// Match starts a descriptor that matches nodes whose dotted-path keys equal
// the given values (e.g. "internal.type" -> "Markdown").
func (b *Builder) Match(criteria map[string]any) *DescriptorBuilder {
	return b.When(func(node domain.Node, _ domain.GetNodeFunc) bool {
		for path, want := range criteria {
			got, ok := node.Lookup(path)
			if !ok || !reflect.DeepEqual(got, want) {
				return false
			}
		}
		return true
	})
}

// Build compiles the accumulated descriptors.
func (b *Builder) Build() []domain.Descriptor {
	out := make([]domain.Descriptor, 0, len(b.descriptors))
	for _, db := range b.descriptors {
		out = append(out, db.desc)
	}
	return out
}
