package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/manifest"
	"github.com/aretw0/espalier/pkg/registry"
)

const sampleManifest = `
descriptors:
  - match:
      internal.type: Markdown
    fields:
      - name: slug
        getter: slug_from_title
        transformer: slugify
        validator: nonempty
      - name: draft
        default: false
  - predicate: always
    fields:
      - name: stamp
        default_fn: now
`

func testRegistry() *registry.Registry {
	r := registry.Builtin()
	r.RegisterGetter("slug_from_title", func(node domain.Node, _ any, _ domain.Actions, _ domain.GetNodeFunc) any {
		return node["title"]
	})
	return r
}

func TestParse(t *testing.T) {
	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)
	require.Len(t, m.Descriptors, 2)

	first := m.Descriptors[0]
	assert.Equal(t, "Markdown", first.Match["internal.type"])
	require.Len(t, first.Fields, 2)
	assert.Equal(t, "slug", first.Fields[0].Name)
	assert.Equal(t, "slugify", first.Fields[0].Transformer)
	assert.Equal(t, false, first.Fields[1].Default)

	second := m.Descriptors[1]
	assert.Equal(t, "always", second.Predicate)
	assert.Equal(t, "now", second.Fields[0].DefaultFn)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := manifest.Parse([]byte("descriptors: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "espalier.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Descriptors, 2)

	_, err = manifest.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestCompile(t *testing.T) {
	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	descriptors, err := m.Compile(testRegistry())
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	// Match block compiled into a predicate.
	pred := descriptors[0].Predicate
	require.NotNil(t, pred)
	assert.True(t, pred(domain.Node{"internal": map[string]any{"type": "Markdown"}}, nil))
	assert.False(t, pred(domain.Node{"internal": map[string]any{"type": "Yaml"}}, nil))

	// Named callbacks resolved.
	slug := descriptors[0].Fields[0]
	assert.NotNil(t, slug.Getter)
	assert.NotNil(t, slug.Transform)
	assert.NotNil(t, slug.Validate)

	// Literal default survives as-is; default_fn becomes DefaultFunc.
	assert.Equal(t, false, descriptors[0].Fields[1].Default)
	assert.NotNil(t, descriptors[1].Fields[0].DefaultFunc)
}

func TestCompile_UnknownNames(t *testing.T) {
	cases := []string{
		"descriptors:\n  - predicate: nope\n    fields: []\n",
		"descriptors:\n  - predicate: always\n    fields:\n      - name: a\n        getter: nope\n",
		"descriptors:\n  - predicate: always\n    fields:\n      - name: a\n        transformer: nope\n",
		"descriptors:\n  - predicate: always\n    fields:\n      - name: a\n        validator: nope\n",
		"descriptors:\n  - predicate: always\n    fields:\n      - name: a\n        setter: nope\n",
		"descriptors:\n  - predicate: always\n    fields:\n      - name: a\n        default_fn: nope\n",
	}
	for _, src := range cases {
		m, err := manifest.Parse([]byte(src))
		require.NoError(t, err)
		_, err = m.Compile(registry.Builtin())
		assert.Error(t, err, "manifest %q", src)
		assert.Contains(t, err.Error(), "nope")
	}
}

func TestCompile_MissingPredicateAndMatch(t *testing.T) {
	m, err := manifest.Parse([]byte("descriptors:\n  - fields:\n      - name: a\n"))
	require.NoError(t, err)

	_, err = m.Compile(registry.Builtin())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "predicate")
}

func TestCompile_PredicateAndMatchBothHold(t *testing.T) {
	src := `
descriptors:
  - predicate: always
    match:
      kind: post
    fields:
      - name: a
        default: 1
`
	m, err := manifest.Parse([]byte(src))
	require.NoError(t, err)

	descriptors, err := m.Compile(registry.Builtin())
	require.NoError(t, err)

	pred := descriptors[0].Predicate
	assert.True(t, pred(domain.Node{"kind": "post"}, nil))
	assert.False(t, pred(domain.Node{"kind": "page"}, nil))
}
