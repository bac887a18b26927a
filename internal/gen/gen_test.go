package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settergen/internal/model"
	"settergen/internal/parser"
)

func mustDecl(t *testing.T, src string) *model.TypeDecl {
	t.Helper()
	td, err := parser.ParseDecl(src)
	require.NoError(t, err)
	return td
}

func render(t *testing.T, methods []*jen.Statement) string {
	t.Helper()
	out, err := Render(methods)
	require.NoError(t, err)
	return out
}

func TestMethodsOnePerFieldInOrder(t *testing.T) {
	td := mustDecl(t, "type Lorem struct {\n\tipsum string\n\tdolor int\n\tsit bool\n}")

	methods, err := Methods(td, Options{})
	require.NoError(t, err)
	require.Len(t, methods, 3)

	out := render(t, methods)
	ipsum := strings.Index(out, "func (l *Lorem) SetIpsum(value string) *Lorem {")
	dolor := strings.Index(out, "func (l *Lorem) SetDolor(value int) *Lorem {")
	sit := strings.Index(out, "func (l *Lorem) SetSit(value bool) *Lorem {")
	require.GreaterOrEqual(t, ipsum, 0)
	require.Greater(t, dolor, ipsum)
	require.Greater(t, sit, dolor)

	assert.Contains(t, out, "l.ipsum = value")
	assert.Contains(t, out, "l.dolor = value")
	assert.Contains(t, out, "l.sit = value")
	assert.Contains(t, out, "return l")
}

func TestMethodsGenericReceiver(t *testing.T) {
	td := mustDecl(t, "type GenLorem[T any] struct {\n\tipsum string\n\tdolor T\n}")

	methods, err := Methods(td, Options{})
	require.NoError(t, err)
	out := render(t, methods)

	assert.Contains(t, out, "func (g *GenLorem[T]) SetIpsum(value string) *GenLorem[T] {")
	assert.Contains(t, out, "func (g *GenLorem[T]) SetDolor(value T) *GenLorem[T] {")
}

func TestMethodsMultipleTypeParams(t *testing.T) {
	td := mustDecl(t, "type Pair[K comparable, V any] struct {\n\tkey K\n\tval V\n}")

	methods, err := Methods(td, Options{})
	require.NoError(t, err)
	out := render(t, methods)

	assert.Contains(t, out, "func (p *Pair[K, V]) SetKey(value K) *Pair[K, V] {")
	assert.Contains(t, out, "func (p *Pair[K, V]) SetVal(value V) *Pair[K, V] {")
}

func TestMethodsValueIdentifierCollision(t *testing.T) {
	td := mustDecl(t, "type Box[value any] struct {\n\titem value\n}")

	methods, err := Methods(td, Options{})
	require.NoError(t, err)
	out := render(t, methods)

	assert.Contains(t, out, "SetItem(value0 value) *Box[value]")
	assert.Contains(t, out, "b.item = value0")
}

func TestMethodsReceiverIdentifierCollision(t *testing.T) {
	// the natural receiver name "t" is already a type parameter
	td := mustDecl(t, "type Tree[t any] struct {\n\troot t\n}")

	methods, err := Methods(td, Options{})
	require.NoError(t, err)
	out := render(t, methods)

	assert.Contains(t, out, "func (t0 *Tree[t]) SetRoot(value t) *Tree[t] {")
	assert.Contains(t, out, "return t0")
}

func TestMethodsShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "opaque int", src: "type Point int"},
		{name: "opaque slice", src: "type Names []string"},
		{name: "unit struct", src: "type Empty struct{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := mustDecl(t, tt.src)
			methods, err := Methods(td, Options{})
			require.Error(t, err)
			assert.Nil(t, methods)

			var serr *ShapeError
			require.ErrorAs(t, err, &serr)
			assert.Contains(t, err.Error(), "no named fields")
		})
	}
}

func TestMethodsCopyDocsFiltersDirectives(t *testing.T) {
	td := mustDecl(t, "type Doc struct {\n\t// body holds the payload.\n\t//go:fix remove\n\t//nolint:unused\n\tbody string\n}")

	methods, err := Methods(td, Options{CopyDocs: true})
	require.NoError(t, err)
	out := render(t, methods)

	assert.Contains(t, out, "// body holds the payload.")
	assert.Contains(t, out, "//nolint:unused")
	assert.NotContains(t, out, "go:fix")
}

func TestMethodsWithoutCopyDocs(t *testing.T) {
	td := mustDecl(t, "type Doc struct {\n\t// body holds the payload.\n\tbody string\n}")

	methods, err := Methods(td, Options{})
	require.NoError(t, err)
	out := render(t, methods)
	assert.NotContains(t, out, "body holds the payload")
}

func TestMethodsAppendHelpers(t *testing.T) {
	td := mustDecl(t, "type Crate struct {\n\tcapacity int\n\tlabels []string\n}")

	methods, err := Methods(td, Options{AppendHelpers: true})
	require.NoError(t, err)
	// two setters plus one Add helper for the slice field
	require.Len(t, methods, 3)

	out := render(t, methods)
	assert.Contains(t, out, "func (c *Crate) AddLabel(value string) *Crate {")
	assert.Contains(t, out, "c.labels = append(c.labels, value)")
	assert.NotContains(t, out, "AddCapacity")
}

func TestMethodsQualifiedFieldType(t *testing.T) {
	td := mustDecl(t, "import \"time\"\n\ntype Stamped struct {\n\tat time.Time\n}")

	methods, err := Methods(td, Options{})
	require.NoError(t, err)
	out := render(t, methods)
	assert.Contains(t, out, "SetAt(value time.Time) *Stamped")
}

func TestMethodsEmbeddedField(t *testing.T) {
	td := mustDecl(t, "type Wrapped struct {\n\t*Inner\n\tlabel string\n}")

	methods, err := Methods(td, Options{})
	require.NoError(t, err)
	out := render(t, methods)
	assert.Contains(t, out, "func (w *Wrapped) SetInner(value *Inner) *Wrapped {")
	assert.Contains(t, out, "w.Inner = value")
}

func TestCheckedInFixtureMatchesGenerator(t *testing.T) {
	p := parser.New(parser.Config{Dir: "fixture"})
	require.NoError(t, p.Parse())
	require.Len(t, p.Decls, 1)
	require.Equal(t, "Order", p.Decls[0].Name)

	methods, err := Methods(p.Decls[0], Options{CopyDocs: true, AppendHelpers: true})
	require.NoError(t, err)
	rendered := render(t, methods)

	checkedIn, err := os.ReadFile(filepath.Join("fixture", "setters_gen.go"))
	require.NoError(t, err)

	// Every generated method, comments included, must appear verbatim in
	// the checked-in file, so the behavioral fixture tests exercise exactly
	// what the generator emits.
	for _, method := range strings.Split(strings.TrimRight(rendered, "\n"), "\n\n") {
		assert.Contains(t, string(checkedIn), method)
	}
}
