package model

import "go/ast"

// Shape classifies what kind of type a marked declaration turned out to be.
// Only ShapeNamedFields can receive generated setters; the other shapes have
// no field names to key them on.
type Shape int

const (
	ShapeInvalid     Shape = iota
	ShapeNamedFields       // struct with at least one field
	ShapeUnit              // struct with no fields
	ShapeOpaque            // non-struct underlying type (int, slice, func, ...)
)

func (s Shape) String() string {
	switch s {
	case ShapeNamedFields:
		return "named-fields"
	case ShapeUnit:
		return "unit"
	case ShapeOpaque:
		return "opaque"
	default:
		return "invalid"
	}
}

// TypeParam is one generic parameter of a declaration. Constraint keeps the
// bound exactly as written; generated methods only restate the bare name.
type TypeParam struct {
	Name       string
	Constraint string
}

type Field struct {
	Name       string   // Go identifier; implicit name for embedded fields
	TypeExpr   ast.Expr // AST for the declared type
	TypeSrc    string   // declared type re-emitted verbatim
	Doc        []string // raw doc-comment lines, without the leading "//"
	IsEmbedded bool
}

// TypeDecl is the parsed representation of one marked type declaration.
// It is built once per run and read-only afterwards.
type TypeDecl struct {
	Name       string
	TypeParams []TypeParam
	Shape      Shape
	Fields     []*Field // declaration order; only valid for ShapeNamedFields
	Doc        string
	PkgPath    string            // import path of the declaring package, "" for snippets
	Imports    map[string]string // alias → import path of the declaring file
}
