package ports

import "github.com/aretw0/espalier/pkg/domain"

// NodeSource defines how tooling retrieves node records.
// This allows the storage layer (Memory, FS) to be decoupled from the
// attacher, which itself only ever sees a domain.GetNodeFunc.
type NodeSource interface {
	// GetNode retrieves a node by ID. Implementations wrap
	// domain.ErrNodeNotFound when the ID has no backing record.
	GetNode(id string) (domain.Node, error)

	// ListNodes returns all node IDs available in the source, in
	// deterministic order.
	ListNodes() ([]string, error)
}

// Resolver adapts a NodeSource to the callback shape predicates and field
// functions receive. Lookup errors collapse to a missing node; the attacher
// contract has no error channel for node resolution.
func Resolver(src NodeSource) domain.GetNodeFunc {
	return func(id string) (domain.Node, bool) {
		node, err := src.GetNode(id)
		if err != nil {
			return nil, false
		}
		return node, true
	}
}
