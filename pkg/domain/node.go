package domain

import "strings"

// Node is an opaque content record supplied by the host build pipeline.
// The attacher only ever reads it; fields the host attaches as a side effect
// of CreateNodeField are the host's own business.
type Node map[string]any

// ID returns the node's "id" key when present and a string, or "".
// Nodes are not required to carry an ID; adapters that index nodes do.
func (n Node) ID() string {
	if id, ok := n["id"].(string); ok {
		return id
	}
	return ""
}

// Lookup resolves a dotted key path (e.g. "internal.type") against the node,
// descending through nested map values. The boolean reports whether the full
// path exists.
func (n Node) Lookup(path string) (any, bool) {
	if n == nil {
		return nil, false
	}

	current := any(n)
	for _, part := range strings.Split(path, ".") {
		switch m := current.(type) {
		case Node:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			current = v
		case map[string]any:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			current = v
		default:
			return nil, false
		}
	}
	return current, true
}

// GetNodeFunc resolves another node by ID. The host owns node storage; the
// attacher only forwards this handle to predicates and field callbacks.
type GetNodeFunc func(id string) (Node, bool)
