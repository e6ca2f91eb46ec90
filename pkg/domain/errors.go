package domain

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound is returned by node sources when an ID has no backing record.
var ErrNodeNotFound = errors.New("node not found")

// ConfigurationError reports a malformed descriptor. It is raised eagerly,
// before any field processing, because a broken descriptor set is a
// programming error in the caller's configuration.
type ConfigurationError struct {
	DescriptorIndex int
	Reason          string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("descriptor %d is invalid: %s", e.DescriptorIndex, e.Reason)
}

// ValidationError reports a field value rejected by its validator. It aborts
// the attach call that produced it; no further descriptors or fields run.
type ValidationError struct {
	// FieldName is empty when the field spec carries no name.
	FieldName string
	Value     any
}

func (e *ValidationError) Error() string {
	name := e.FieldName
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("field %q: validator rejected value %v", name, e.Value)
}
