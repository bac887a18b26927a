package parser

import (
	"errors"
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"

	"settergen/internal/model"
)

// ParseDecl parses the source text of a single type declaration, the form
// the generate entry point receives. The snippet needs no package clause;
// one is synthesized around it.
func ParseDecl(src string) (*model.TypeDecl, error) {
	fset := token.NewFileSet()
	wrapped := "package decl\n\n" + src
	file, err := goparser.ParseFile(fset, "decl.go", wrapped, goparser.ParseComments|goparser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse type declaration: %w", err)
	}

	imports := fileImports(file)
	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			td := DeclFromSpec(fset, ts, docText(gen.Doc, ts.Doc))
			td.Imports = imports
			return td, nil
		}
	}
	return nil, errors.New("no type declaration found in input")
}
