package espalier_test

import (
	"fmt"
	"log"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
)

// ExampleAttachFields demonstrates the one-shot contract: a node, a recording
// host action, and a small descriptor set built with the DSL.
func ExampleAttachFields() {
	descriptors := dsl.New().
		Match(map[string]any{"internal.type": "Markdown"}).
		Field("slug").
		Getter(func(node domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) any {
			return "/" + node.ID()
		}).
		Field("draft").Default(false).
		Build()

	node := domain.Node{
		"id":       "hello-world",
		"internal": map[string]any{"type": "Markdown"},
	}
	recorder := memory.NewRecorder()

	if err := espalier.AttachFields(node, recorder, nil, descriptors, nil); err != nil {
		log.Fatal(err)
	}

	for _, f := range recorder.Fields() {
		fmt.Printf("%s = %v\n", f.Name, f.Value)
	}
	// Output:
	// slug = /hello-world
	// draft = false
}
