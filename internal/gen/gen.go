// Package gen synthesizes chained, non-consuming setter methods for
// named-field struct declarations.
package gen

import (
	"fmt"
	"go/ast"
	"go/format"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
	"github.com/jinzhu/inflection"

	"settergen/internal/model"
)

// Options control per-method extras; the setter set itself is not optional.
type Options struct {
	CopyDocs      bool // carry filtered field doc comments onto setters
	AppendHelpers bool // also emit AddXxx helpers for slice fields
}

// ShapeError is the one fatal input error: the marked type has no named
// fields to key setters on. There is no partial output.
type ShapeError struct {
	TypeName string
	Shape    model.Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cannot generate setters for %s: %s types have no named fields", e.TypeName, e.Shape)
}

// Methods synthesizes one setter per field of decl, in declaration order.
// Each setter assigns its argument to the field and returns the receiver, so
// calls chain without re-binding a variable.
func Methods(decl *model.TypeDecl, opts Options) ([]*jen.Statement, error) {
	if decl.Shape != model.ShapeNamedFields {
		return nil, &ShapeError{TypeName: decl.Name, Shape: decl.Shape}
	}

	// The synthesized identifiers must not shadow the host type's generic
	// parameters; rename value0, value1, ... until nothing collides.
	taken := make(map[string]bool, len(decl.TypeParams)+2)
	for _, tp := range decl.TypeParams {
		taken[tp.Name] = true
	}
	recv := freshIdent(receiverBase(decl.Name), taken)
	taken[recv] = true
	value := freshIdent("value", taken)

	methods := make([]*jen.Statement, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		methods = append(methods, setter(decl, f, recv, value, opts))
		if opts.AppendHelpers {
			if add := appendHelper(decl, f, recv, value); add != nil {
				methods = append(methods, add)
			}
		}
	}
	return methods, nil
}

// Render returns the gofmt-formatted source text of methods, separated by
// blank lines. Formatting is a distinct step so that round-trip output stays
// byte-stable however the statements were assembled.
func Render(methods []*jen.Statement) (string, error) {
	parts := make([]string, len(methods))
	for i, m := range methods {
		parts[i] = fmt.Sprintf("%#v", m)
	}
	out, err := format.Source([]byte(strings.Join(parts, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("format generated methods: %w", err)
	}
	return string(out), nil
}

func setter(decl *model.TypeDecl, f *model.Field, recv, value string, opts Options) *jen.Statement {
	name := "Set" + exportName(f.Name)

	s := jen.Empty()
	s.Commentf("%s sets %s and returns %s, so calls can be chained.", name, f.Name, recv).Line()
	if opts.CopyDocs {
		for _, line := range copyableDoc(f.Doc) {
			s.Comment(line).Line()
		}
	}
	s.Func().Params(jen.Id(recv).Add(receiverType(decl))).
		Id(name).
		Params(jen.Id(value).Add(typeCode(f.TypeExpr, decl.Imports))).
		Add(receiverType(decl)).
		Block(
			jen.Id(recv).Dot(f.Name).Op("=").Id(value),
			jen.Return(jen.Id(recv)),
		)
	return s
}

// appendHelper emits an AddXxx method for slice fields: one element in,
// receiver out. Non-slice fields get nothing.
func appendHelper(decl *model.TypeDecl, f *model.Field, recv, value string) *jen.Statement {
	at, ok := f.TypeExpr.(*ast.ArrayType)
	if !ok || at.Len != nil {
		return nil
	}
	name := "Add" + exportName(inflection.Singular(f.Name))

	s := jen.Empty()
	s.Commentf("%s appends one element to %s and returns %s, so calls can be chained.", name, f.Name, recv).Line()
	s.Func().Params(jen.Id(recv).Add(receiverType(decl))).
		Id(name).
		Params(jen.Id(value).Add(typeCode(at.Elt, decl.Imports))).
		Add(receiverType(decl)).
		Block(
			jen.Id(recv).Dot(f.Name).Op("=").Append(jen.Id(recv).Dot(f.Name), jen.Id(value)),
			jen.Return(jen.Id(recv)),
		)
	return s
}

// receiverType builds *Name, or *Name[A, B] when the type is generic. The
// bare parameter names are restated exactly as declared; constraints belong
// to the original declaration alone.
func receiverType(decl *model.TypeDecl) jen.Code {
	t := jen.Op("*").Id(decl.Name)
	if len(decl.TypeParams) > 0 {
		args := make([]jen.Code, 0, len(decl.TypeParams))
		for _, tp := range decl.TypeParams {
			args = append(args, jen.Id(tp.Name))
		}
		t.Index(args...)
	}
	return t
}

// copyableDoc filters a field's doc lines down to the ones that read
// correctly on a setter: plain prose, Deprecated paragraphs, nolint markers.
// Build and generate directives stay on the field.
func copyableDoc(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "go:") || strings.HasPrefix(t, "settergen:") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func freshIdent(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if !taken[name] {
			return name
		}
	}
}

func receiverBase(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r))
}

func exportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
