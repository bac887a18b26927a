package gen

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"

	"github.com/dave/jennifer/jen"
)

// typeCode re-emits a declared field type as jen code. Selector types are
// turned into qualified references when the declaring file's import table
// knows the alias, so the generated file picks up the right imports; every
// other shape is rebuilt structurally, with a verbatim fallback for the
// exotic ones.
func typeCode(e ast.Expr, imports map[string]string) jen.Code {
	switch t := e.(type) {
	case *ast.Ident:
		return jen.Id(t.Name)
	case *ast.SelectorExpr:
		if x, ok := t.X.(*ast.Ident); ok {
			if impPath, ok := imports[x.Name]; ok {
				return jen.Qual(impPath, t.Sel.Name)
			}
			return jen.Id(x.Name).Dot(t.Sel.Name)
		}
		return verbatim(t)
	case *ast.StarExpr:
		return jen.Op("*").Add(typeCode(t.X, imports))
	case *ast.ArrayType:
		if t.Len == nil {
			return jen.Index().Add(typeCode(t.Elt, imports))
		}
		return jen.Index(verbatim(t.Len)).Add(typeCode(t.Elt, imports))
	case *ast.MapType:
		return jen.Map(typeCode(t.Key, imports)).Add(typeCode(t.Value, imports))
	case *ast.IndexExpr:
		return jen.Add(typeCode(t.X, imports)).Index(typeCode(t.Index, imports))
	case *ast.IndexListExpr:
		args := make([]jen.Code, 0, len(t.Indices))
		for _, idx := range t.Indices {
			args = append(args, typeCode(idx, imports))
		}
		return jen.Add(typeCode(t.X, imports)).Index(args...)
	case *ast.ChanType:
		switch t.Dir {
		case ast.RECV:
			return jen.Op("<-").Chan().Add(typeCode(t.Value, imports))
		case ast.SEND:
			return jen.Chan().Op("<-").Add(typeCode(t.Value, imports))
		default:
			return jen.Chan().Add(typeCode(t.Value, imports))
		}
	case *ast.ParenExpr:
		return jen.Parens(typeCode(t.X, imports))
	default:
		// func types, inline structs/interfaces, anything else unusual:
		// reproduce the source text as written.
		return verbatim(e)
	}
}

func verbatim(e ast.Expr) jen.Code {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), e); err != nil {
		return jen.Id("any")
	}
	return jen.Id(buf.String())
}
