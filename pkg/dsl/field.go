package dsl

import "github.com/aretw0/espalier/pkg/domain"

// DescriptorBuilder provides a fluent API for configuring one descriptor.
type DescriptorBuilder struct {
	desc    domain.Descriptor
	builder *Builder
}

// Field appends a named field spec and returns its builder.
func (d *DescriptorBuilder) Field(name string) *FieldBuilder {
	d.desc.Fields = append(d.desc.Fields, domain.FieldSpec{Name: name})
	return &FieldBuilder{desc: d, index: len(d.desc.Fields) - 1}
}

// Computed appends an unnamed field spec. Useful for getter/setter driven
// fields whose names the setter decides.
func (d *DescriptorBuilder) Computed() *FieldBuilder {
	d.desc.Fields = append(d.desc.Fields, domain.FieldSpec{})
	return &FieldBuilder{desc: d, index: len(d.desc.Fields) - 1}
}

// When starts the next descriptor on the parent builder.
func (d *DescriptorBuilder) When(pred domain.Predicate) *DescriptorBuilder {
	return d.builder.When(pred)
}

// Build compiles the whole descriptor set accumulated so far.
func (d *DescriptorBuilder) Build() []domain.Descriptor {
	return d.builder.Build()
}

// FieldBuilder configures a single field spec in place.
type FieldBuilder struct {
	desc  *DescriptorBuilder
	index int
}

func (f *FieldBuilder) spec() *domain.FieldSpec {
	return &f.desc.desc.Fields[f.index]
}

// Getter sets the value computation for the field. It takes priority over the
// direct node property read.
func (f *FieldBuilder) Getter(g domain.Getter) *FieldBuilder {
	f.spec().Getter = g
	return f
}

// Default sets the literal fallback used when resolution yields nil.
func (f *FieldBuilder) Default(v any) *FieldBuilder {
	f.spec().Default = v
	return f
}

// DefaultFunc sets the computed fallback. It wins over Default.
func (f *FieldBuilder) DefaultFunc(fn domain.DefaultFunc) *FieldBuilder {
	f.spec().DefaultFunc = fn
	return f
}

// Transform sets the value rewrite applied after resolution.
func (f *FieldBuilder) Transform(t domain.Transformer) *FieldBuilder {
	f.spec().Transform = t
	return f
}

// Validate sets the acceptance check applied to the final value.
func (f *FieldBuilder) Validate(v domain.Validator) *FieldBuilder {
	f.spec().Validate = v
	return f
}

// Setter hands the commit step to a custom function.
func (f *FieldBuilder) Setter(s domain.Setter) *FieldBuilder {
	f.spec().Setter = s
	return f
}

// Field starts the next field on the same descriptor.
func (f *FieldBuilder) Field(name string) *FieldBuilder {
	return f.desc.Field(name)
}

// Computed starts the next unnamed field on the same descriptor.
func (f *FieldBuilder) Computed() *FieldBuilder {
	return f.desc.Computed()
}

// When starts the next descriptor on the parent builder.
func (f *FieldBuilder) When(pred domain.Predicate) *DescriptorBuilder {
	return f.desc.When(pred)
}

// Build compiles the whole descriptor set accumulated so far.
func (f *FieldBuilder) Build() []domain.Descriptor {
	return f.desc.Build()
}
