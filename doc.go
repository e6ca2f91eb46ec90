/*
Package espalier attaches computed fields to content nodes inside a static-site
build pipeline.

Given a node, a sequence of descriptors (predicate + field specifications), and
the host's field-creation action, it evaluates which descriptors apply and, for
each applicable descriptor's fields, resolves a value (getter, existing node
property, or default), optionally transforms and validates it, and commits it
through the host's CreateNodeField action or a custom setter.

# Concept

Espalier treats field attachment as pure configuration. The host pipeline owns
node discovery, storage, and the side-effect channel; Espalier owns only the
deterministic mapping from descriptors to CreateNodeField calls. Every call is
synchronous and stateless: nothing outlives a single Attach invocation.

# Resolution order

For each field of a matching descriptor, strictly in order:

 1. Getter, if present; otherwise a direct read of node[Name].
 2. Default substitution, only when the resolved value is nil. A value of
    false, 0, or "" never triggers the default.
 3. Transform, if present, replaces the value.
 4. Validate, if present; a false result aborts the whole call with a
    *domain.ValidationError naming the field and the rejected value.
 5. Commit: a custom Setter owns this step entirely (zero, one, or many
    CreateNodeField calls); without one, exactly one CreateNodeField call
    with {Node, Name, Value}.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/espalier"
		"github.com/aretw0/espalier/pkg/adapters/memory"
		"github.com/aretw0/espalier/pkg/domain"
		"github.com/aretw0/espalier/pkg/dsl"
	)

	func main() {
		descriptors := dsl.New().
			When(func(node domain.Node, _ domain.GetNodeFunc) bool {
				t, _ := node.Lookup("internal.type")
				return t == "Markdown"
			}).
			Field("slug").
			Getter(func(node domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) any {
				return "/" + node.ID()
			}).
			Build()

		node := domain.Node{"id": "hello", "internal": map[string]any{"type": "Markdown"}}
		recorder := memory.NewRecorder()

		if err := espalier.AttachFields(node, recorder, nil, descriptors, nil); err != nil {
			log.Fatal(err)
		}

		for _, f := range recorder.Fields() {
			log.Printf("%s = %v", f.Name, f.Value)
		}
	}

Descriptor sets can also be authored declaratively as YAML manifests (see
pkg/manifest) with callbacks referenced by name from a registry (pkg/registry).
*/
package espalier
