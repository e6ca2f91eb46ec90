package domain

// Predicate decides whether a descriptor applies to a node. It receives the
// node lookup handle so membership can depend on related nodes (e.g. a parent
// File node).
type Predicate func(node Node, getNode GetNodeFunc) bool

// Getter computes a field value from the node and the attach context.
type Getter func(node Node, ctx any, actions Actions, getNode GetNodeFunc) any

// DefaultFunc computes a fallback value when resolution yielded nothing.
type DefaultFunc func(node Node, ctx any, actions Actions, getNode GetNodeFunc) any

// Transformer rewrites the resolved (or defaulted) value before validation.
type Transformer func(value any, node Node, ctx any, actions Actions, getNode GetNodeFunc) any

// Validator accepts or rejects the final value. A false result aborts the
// entire attach call.
type Validator func(value any, node Node, ctx any, actions Actions, getNode GetNodeFunc) bool

// Setter takes over the commit step entirely. It may call CreateNodeField on
// the provided actions zero, one, or many times, with any field names it
// chooses. Its error aborts the attach call.
type Setter func(value any, node Node, ctx any, actions Actions, getNode GetNodeFunc) error

// Descriptor is a predicate-guarded group of field specifications, applied
// only to nodes the predicate matches. Predicate is required; a nil predicate
// is a configuration error, not a runtime data condition.
type Descriptor struct {
	Predicate Predicate
	Fields    []FieldSpec
}

// FieldSpec governs how one computed value is derived and committed.
//
// Resolution order: Getter first; otherwise a direct read of node[Name]; a
// nil result then falls back to DefaultFunc or Default (in that precedence).
// DefaultFunc and Default render the "computed or literal" default variants:
// set at most one of them.
//
// At least one of Name, Getter, or Setter should be set for the spec to be
// actionable. A spec with none of them resolves and validates normally but
// commits nothing; this is deliberately permissive.
type FieldSpec struct {
	Name        string
	Getter      Getter
	Default     any
	DefaultFunc DefaultFunc
	Transform   Transformer
	Validate    Validator
	Setter      Setter
}
