// Package manifest loads declarative descriptor sets from YAML and compiles
// them into runnable descriptors by resolving callback names against a
// registry.
package manifest

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML surface consumers author.
type Manifest struct {
	Descriptors []DescriptorSpec `yaml:"descriptors" mapstructure:"descriptors"`
}

// DescriptorSpec declares one descriptor. The predicate comes either from a
// named registry entry ("predicate") or from a declarative equality matcher
// ("match"); when both are present, both must hold.
type DescriptorSpec struct {
	Predicate string         `yaml:"predicate,omitempty" mapstructure:"predicate"`
	Match     map[string]any `yaml:"match,omitempty" mapstructure:"match"`
	Fields    []FieldEntry   `yaml:"fields" mapstructure:"fields"`
}

// FieldEntry declares one field spec. Default is a YAML literal; DefaultFn
// names a registered default function and wins over Default, mirroring the
// "computed or literal" default variants of the programmatic API.
type FieldEntry struct {
	Name        string `yaml:"name,omitempty" mapstructure:"name"`
	Getter      string `yaml:"getter,omitempty" mapstructure:"getter"`
	Default     any    `yaml:"default,omitempty" mapstructure:"default"`
	DefaultFn   string `yaml:"default_fn,omitempty" mapstructure:"default_fn"`
	Transformer string `yaml:"transformer,omitempty" mapstructure:"transformer"`
	Validator   string `yaml:"validator,omitempty" mapstructure:"validator"`
	Setter      string `yaml:"setter,omitempty" mapstructure:"setter"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest YAML. The document goes through a raw map and then
// mapstructure so key handling stays consistent with other loaders.
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var m Manifest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &m,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid manifest structure: %w", err)
	}
	return &m, nil
}
