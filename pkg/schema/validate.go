package schema

import "github.com/aretw0/espalier/pkg/domain"

// Validator adapts a Type to the field validator callback shape. The node,
// context, actions, and getNode arguments are ignored; only the value is
// checked.
func Validator(t Type) domain.Validator {
	return func(value any, _ domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) bool {
		return t.Check(value) == nil
	}
}
