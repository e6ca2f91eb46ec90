// Package memory provides in-memory implementations of the node source and
// actions ports, used by tests, examples, and the CLI.
package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// Store implements ports.NodeSource over a map.
type Store struct {
	nodes map[string]domain.Node
}

var _ ports.NodeSource = (*Store)(nil)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nodes: make(map[string]domain.Node)}
}

// NewFromNodes creates a store from node values. Every node must carry a
// string "id" key; this keeps test setup honest about addressability.
func NewFromNodes(nodes ...domain.Node) (*Store, error) {
	s := NewStore()
	for _, n := range nodes {
		if err := s.Add(n); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add indexes a node by its "id" key. Same-ID adds overwrite.
func (s *Store) Add(n domain.Node) error {
	id := n.ID()
	if id == "" {
		return fmt.Errorf("node missing id")
	}
	s.nodes[id] = n
	return nil
}

// GetNode retrieves a node by ID.
func (s *Store) GetNode(id string) (domain.Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	return n, nil
}

// ListNodes returns all node IDs in deterministic order.
func (s *Store) ListNodes() ([]string, error) {
	keys := make([]string, 0, len(s.nodes))
	for k := range s.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Resolver returns the lookup callback shape the attacher forwards to
// predicates and field functions.
func (s *Store) Resolver() domain.GetNodeFunc {
	return func(id string) (domain.Node, bool) {
		n, ok := s.nodes[id]
		return n, ok
	}
}
