package parser

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"path"
	"strings"

	"golang.org/x/tools/go/packages"

	"settergen/internal/model"
)

// DefaultMarker is the doc-comment line that selects a type for generation.
const DefaultMarker = "settergen:setters"

// Config narrows the user-facing options down to what scanning needs.
type Config struct {
	Dir    string
	Marker string
}

// Parser scans the packages under a directory and collects every type
// declaration carrying the marker, in source order.
type Parser struct {
	cfg  Config
	fset *token.FileSet

	Decls   []*model.TypeDecl
	PkgName string
	PkgPath string
}

func New(cfg Config) *Parser {
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	return &Parser{cfg: cfg, fset: token.NewFileSet()}
}

func (p *Parser) Parse() error {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.LoadImports | packages.LoadAllSyntax,
		Dir:  p.cfg.Dir,
		Fset: p.fset,
	}, "./...")
	if err != nil {
		return err
	}

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			p.collectMarked(pkg, file)
		}
	}

	// Every marked declaration must live in one package: the generated file
	// can only belong to one of them.
	for _, d := range p.Decls {
		if d.PkgPath != p.PkgPath {
			return fmt.Errorf("marked types span multiple packages: %s and %s", p.PkgPath, d.PkgPath)
		}
	}

	if p.PkgPath == "" {
		if pkgPath, pathErr := resolvePkgPath(p.cfg.Dir); pathErr == nil {
			p.PkgPath = pkgPath
		}
	}

	return nil
}

func (p *Parser) collectMarked(pkg *packages.Package, file *ast.File) {
	imports := fileImports(file)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		genMarked := hasMarker(gen.Doc, p.cfg.Marker)

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			// True aliases (type X = Y) have no method set of their own.
			if ts.Assign.IsValid() {
				continue
			}

			if !genMarked && !hasMarker(ts.Doc, p.cfg.Marker) {
				continue
			}

			td := DeclFromSpec(p.fset, ts, docText(gen.Doc, ts.Doc))
			td.PkgPath = pkg.PkgPath
			td.Imports = imports
			p.Decls = append(p.Decls, td)

			if p.PkgName == "" {
				p.PkgName = file.Name.Name
				p.PkgPath = pkg.PkgPath
			}
		}
	}
}

// DeclFromSpec lowers one *ast.TypeSpec into the model, classifying its
// shape and capturing fields in declaration order.
func DeclFromSpec(fset *token.FileSet, ts *ast.TypeSpec, doc string) *model.TypeDecl {
	td := &model.TypeDecl{Name: ts.Name.Name, Doc: doc}

	if ts.TypeParams != nil {
		for _, f := range ts.TypeParams.List {
			constraint := exprText(fset, f.Type)
			for _, n := range f.Names {
				td.TypeParams = append(td.TypeParams, model.TypeParam{Name: n.Name, Constraint: constraint})
			}
		}
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		td.Shape = model.ShapeOpaque
		return td
	}
	if st.Fields == nil || len(st.Fields.List) == 0 {
		td.Shape = model.ShapeUnit
		return td
	}

	td.Shape = model.ShapeNamedFields
	for _, f := range st.Fields.List {
		src := exprText(fset, f.Type)
		doc := docLines(f.Doc)

		if len(f.Names) == 0 {
			td.Fields = append(td.Fields, &model.Field{
				Name:       embeddedName(f.Type),
				TypeExpr:   f.Type,
				TypeSrc:    src,
				Doc:        doc,
				IsEmbedded: true,
			})
			continue
		}
		for _, n := range f.Names {
			td.Fields = append(td.Fields, &model.Field{
				Name:     n.Name,
				TypeExpr: f.Type,
				TypeSrc:  src,
				Doc:      doc,
			})
		}
	}
	return td
}

// fileImports maps the aliases usable inside file to import paths. Blank and
// dot imports contribute nothing a generated type reference could use.
func fileImports(file *ast.File) map[string]string {
	out := make(map[string]string, len(file.Imports))
	for _, imp := range file.Imports {
		impPath := strings.Trim(imp.Path.Value, `"`)
		alias := path.Base(impPath)
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			alias = imp.Name.Name
		}
		out[alias] = impPath
	}
	return out
}

// hasMarker looks for the marker on the raw comment list; CommentGroup.Text
// strips directive-style comments, which is exactly what markers look like.
func hasMarker(doc *ast.CommentGroup, marker string) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if text == marker {
			return true
		}
	}
	return false
}

func docText(groups ...*ast.CommentGroup) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if g == nil {
			continue
		}
		if txt := strings.TrimSpace(g.Text()); txt != "" {
			parts = append(parts, txt)
		}
	}
	return strings.Join(parts, "\n")
}

// docLines keeps the raw line comments of a field, directives included; the
// generator decides which of them carry over to the setter.
func docLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	out := make([]string, 0, len(doc.List))
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, "//") {
			continue
		}
		line := strings.TrimPrefix(c.Text, "//")
		line = strings.TrimPrefix(line, " ")
		out = append(out, line)
	}
	return out
}

func exprText(fset *token.FileSet, e ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, e); err != nil {
		return ""
	}
	return buf.String()
}

// embeddedName is the implicit field name of an embedded type: the bare
// type name with any pointer, qualifier, or instantiation stripped.
func embeddedName(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	default:
		return ""
	}
}
