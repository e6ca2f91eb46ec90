package domain

// Field is the payload delivered to the host's CreateNodeField action when the
// attacher commits a field implicitly (no custom setter).
type Field struct {
	Node  Node   `json:"node"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Actions is the capability set the host hands to the attacher. CreateNodeField
// is the only capability the engine itself invokes; concrete hosts may expose
// additional capabilities on their implementation, and custom setters can
// type-assert for them without the engine knowing their shape.
type Actions interface {
	// CreateNodeField records one computed field on a node. An error aborts
	// the surrounding attach call and propagates to the caller unmodified.
	CreateNodeField(field Field) error
}
