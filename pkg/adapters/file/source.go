// Package file loads content nodes from a directory tree. It is a host-side
// harness: the attacher itself never discovers nodes, but the CLI and tests
// need a pipeline stand-in that does.
package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// Source implements ports.NodeSource over a directory of content files.
// Markdown files contribute their YAML frontmatter plus a "body" key; YAML and
// JSON files contribute their top-level mapping as-is. The node ID is the
// slash-separated relative path without extension; "internal.type" and
// "internal.contentFilePath" are derived, mirroring what content pipelines
// conventionally stamp on file-backed nodes.
type Source struct {
	store *memory.Store
}

var _ ports.NodeSource = (*Source)(nil)

// Load walks dir and indexes every supported content file.
func Load(dir string) (*Source, error) {
	store := memory.NewStore()

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		node, ok, err := loadFile(dir, path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		if !ok {
			return nil
		}
		return store.Add(node)
	})
	if err != nil {
		return nil, err
	}
	return &Source{store: store}, nil
}

func loadFile(root, path string) (domain.Node, bool, error) {
	var nodeType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		nodeType = "Markdown"
	case ".yaml", ".yml":
		nodeType = "Yaml"
	case ".json":
		nodeType = "Json"
	default:
		return nil, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}

	node := domain.Node{}
	switch nodeType {
	case "Markdown":
		meta := map[string]any{}
		body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
		if err != nil {
			return nil, false, fmt.Errorf("invalid frontmatter: %w", err)
		}
		for k, v := range meta {
			node[k] = v
		}
		node["body"] = strings.TrimSpace(string(body))
	case "Yaml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, false, err
		}
		for k, v := range doc {
			node[k] = v
		}
	case "Json":
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, false, err
		}
		for k, v := range doc {
			node[k] = v
		}
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))

	// Explicit frontmatter id wins over the path-derived one.
	if node.ID() == "" {
		node["id"] = filepath.ToSlash(stem)
	}
	node["internal"] = map[string]any{
		"type":            nodeType,
		"contentFilePath": filepath.ToSlash(rel),
	}
	return node, true, nil
}

// GetNode retrieves a node by ID.
func (s *Source) GetNode(id string) (domain.Node, error) {
	return s.store.GetNode(id)
}

// ListNodes returns all node IDs in deterministic order.
func (s *Source) ListNodes() ([]string, error) {
	return s.store.ListNodes()
}

// Resolver returns the lookup callback forwarded to predicates.
func (s *Source) Resolver() domain.GetNodeFunc {
	return s.store.Resolver()
}
