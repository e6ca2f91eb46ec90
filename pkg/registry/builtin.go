package registry

import (
	"strings"
	"time"
	"unicode"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/schema"
)

// Builtin returns a registry prepopulated with the stock callbacks manifests
// commonly reference. Callers can register more on top.
func Builtin() *Registry {
	r := New()

	r.RegisterPredicate("always", func(domain.Node, domain.GetNodeFunc) bool {
		return true
	})

	r.RegisterDefault("now", func(domain.Node, any, domain.Actions, domain.GetNodeFunc) any {
		return time.Now().UTC().Format(time.RFC3339)
	})

	r.RegisterTransformer("trim", func(value any, _ domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) any {
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s)
		}
		return value
	})
	r.RegisterTransformer("lowercase", func(value any, _ domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) any {
		if s, ok := value.(string); ok {
			return strings.ToLower(s)
		}
		return value
	})
	r.RegisterTransformer("slugify", func(value any, _ domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) any {
		if s, ok := value.(string); ok {
			return Slugify(s)
		}
		return value
	})

	r.RegisterValidator("present", func(value any, _ domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) bool {
		return value != nil
	})
	r.RegisterValidator("nonempty", func(value any, _ domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) bool {
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) != ""
	})

	// Type checks come from the schema package so manifests share its
	// semantics (e.g. whole floats from JSON pass as ints).
	r.RegisterValidator("string", schema.Validator(schema.String()))
	r.RegisterValidator("int", schema.Validator(schema.Int()))
	r.RegisterValidator("float", schema.Validator(schema.Float()))
	r.RegisterValidator("bool", schema.Validator(schema.Bool()))

	return r
}

// Slugify lowercases s and collapses every non-alphanumeric run into a single
// hyphen, trimming leading and trailing hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
