package manifest

import (
	"fmt"
	"reflect"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/registry"
)

// Compile resolves every named callback against reg and turns match blocks
// into predicates. Unknown names and predicate-less descriptors are compile
// errors: a manifest that compiles runs without configuration errors.
func (m *Manifest) Compile(reg *registry.Registry) ([]domain.Descriptor, error) {
	descriptors := make([]domain.Descriptor, 0, len(m.Descriptors))

	for i, spec := range m.Descriptors {
		pred, err := compilePredicate(i, spec, reg)
		if err != nil {
			return nil, err
		}

		fields := make([]domain.FieldSpec, 0, len(spec.Fields))
		for j, entry := range spec.Fields {
			field, err := compileField(i, j, entry, reg)
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
		}

		descriptors = append(descriptors, domain.Descriptor{
			Predicate: pred,
			Fields:    fields,
		})
	}
	return descriptors, nil
}

func compilePredicate(i int, spec DescriptorSpec, reg *registry.Registry) (domain.Predicate, error) {
	var named domain.Predicate
	if spec.Predicate != "" {
		fn, ok := reg.Predicate(spec.Predicate)
		if !ok {
			return nil, fmt.Errorf("descriptor %d: unknown predicate %q", i, spec.Predicate)
		}
		named = fn
	}

	var matcher domain.Predicate
	if len(spec.Match) > 0 {
		criteria := spec.Match
		matcher = func(node domain.Node, _ domain.GetNodeFunc) bool {
			for path, want := range criteria {
				got, ok := node.Lookup(path)
				if !ok || !reflect.DeepEqual(got, want) {
					return false
				}
			}
			return true
		}
	}

	switch {
	case named != nil && matcher != nil:
		return func(node domain.Node, getNode domain.GetNodeFunc) bool {
			return named(node, getNode) && matcher(node, getNode)
		}, nil
	case named != nil:
		return named, nil
	case matcher != nil:
		return matcher, nil
	default:
		return nil, fmt.Errorf("descriptor %d: needs a predicate or a match block", i)
	}
}

func compileField(i, j int, entry FieldEntry, reg *registry.Registry) (domain.FieldSpec, error) {
	field := domain.FieldSpec{
		Name:    entry.Name,
		Default: entry.Default,
	}

	if entry.Getter != "" {
		fn, ok := reg.Getter(entry.Getter)
		if !ok {
			return field, fmt.Errorf("descriptor %d field %d: unknown getter %q", i, j, entry.Getter)
		}
		field.Getter = fn
	}
	if entry.DefaultFn != "" {
		fn, ok := reg.Default(entry.DefaultFn)
		if !ok {
			return field, fmt.Errorf("descriptor %d field %d: unknown default_fn %q", i, j, entry.DefaultFn)
		}
		field.DefaultFunc = fn
	}
	if entry.Transformer != "" {
		fn, ok := reg.Transformer(entry.Transformer)
		if !ok {
			return field, fmt.Errorf("descriptor %d field %d: unknown transformer %q", i, j, entry.Transformer)
		}
		field.Transform = fn
	}
	if entry.Validator != "" {
		fn, ok := reg.Validator(entry.Validator)
		if !ok {
			return field, fmt.Errorf("descriptor %d field %d: unknown validator %q", i, j, entry.Validator)
		}
		field.Validate = fn
	}
	if entry.Setter != "" {
		fn, ok := reg.Setter(entry.Setter)
		if !ok {
			return field, fmt.Errorf("descriptor %d field %d: unknown setter %q", i, j, entry.Setter)
		}
		field.Setter = fn
	}
	return field, nil
}
