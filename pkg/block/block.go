// Package block turns free-form source text into a parsed, re-emittable
// statement sequence, so custom logic can be spliced into generated code as
// if it were written inline.
package block

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/printer"
	"go/scanner"
	"go/token"
	"strings"
)

// Go has no grammar production for a bare block, so fragments are parsed
// inside a throwaway function. The fragment's first line lands on the line
// right after the opening brace; remap relies on that offset.
const (
	wrapperHeader = "package fragment\n\nfunc _() {\n"
	wrapperFooter = "\n}\n"

	headerLines = 3
)

// Anchor ties a fragment back to the place its text was written, so syntax
// errors point at the caller's source instead of the synthetic wrapper.
// A zero Anchor is usable and reports positions relative to the fragment.
type Anchor struct {
	Filename string
	Line     int // 1-based line of the fragment's first character
	Column   int // 1-based column of the fragment's first character
}

func (a Anchor) normalize() Anchor {
	if a.Filename == "" {
		a.Filename = "fragment.go"
	}
	if a.Line < 1 {
		a.Line = 1
	}
	if a.Column < 1 {
		a.Column = 1
	}
	return a
}

// SyntaxError reports the first offending token of a fragment that did not
// parse as a statement sequence.
type SyntaxError struct {
	Pos token.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// Contents is an immutable parsed statement sequence. It always re-emits as
// a syntactically valid delimited block, including the empty one.
type Contents struct {
	fset  *token.FileSet
	block *ast.BlockStmt
}

// Parse wraps fragment in braces and parses the result with the ordinary
// block grammar, so the fragment has full access to control flow: early
// returns, loops, nested blocks. Malformed input fails with a *SyntaxError;
// an unterminated nested brace is an error, never a truncated block.
func Parse(fragment string, anchor Anchor) (*Contents, error) {
	anchor = anchor.normalize()
	fset := token.NewFileSet()
	src := wrapperHeader + fragment + wrapperFooter
	file, err := goparser.ParseFile(fset, anchor.Filename, src, goparser.ParseComments|goparser.SkipObjectResolution)
	if err != nil {
		return nil, newSyntaxError(err, anchor)
	}

	var fd *ast.FuncDecl
	for _, decl := range file.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok && d.Body != nil {
			fd = d
			break
		}
	}
	if fd == nil {
		return nil, &SyntaxError{
			Pos: token.Position{Filename: anchor.Filename, Line: anchor.Line, Column: anchor.Column},
			Msg: "fragment did not produce a statement block",
		}
	}

	// The fragment must not close the synthetic block early and smuggle in
	// trailing declarations: the wrapper holds exactly one declaration and
	// its body ends at the synthesized closing brace.
	if len(file.Decls) > 1 {
		pos := fset.Position(file.Decls[1].Pos())
		return nil, &SyntaxError{Pos: remap(pos, anchor), Msg: "unexpected declaration after statement block"}
	}
	if end := fset.Position(fd.Body.Rbrace); end.Offset < len(wrapperHeader)+len(fragment) {
		return nil, &SyntaxError{Pos: remap(end, anchor), Msg: "fragment closes its enclosing block"}
	}

	return &Contents{fset: fset, block: fd.Body}, nil
}

// FromExpr wraps a single already-parsed expression as the sole statement of
// a new block. It cannot fail: the expression is well formed by construction.
// fset should be the FileSet the expression was parsed with, so its line
// layout survives re-emission; a nil fset is accepted and prints the
// expression in normalized single-line form. The synthesized braces take the
// expression's span, so positions reported for anything nested inside it
// later stay accurate.
func FromExpr(fset *token.FileSet, expr ast.Expr) *Contents {
	if fset == nil {
		fset = token.NewFileSet()
	}
	return &Contents{
		fset: fset,
		block: &ast.BlockStmt{
			Lbrace: expr.Pos(),
			List:   []ast.Stmt{&ast.ExprStmt{X: expr}},
			Rbrace: expr.End(),
		},
	}
}

// Empty reports whether the statement sequence has zero entries.
func (c *Contents) Empty() bool {
	return len(c.block.List) == 0
}

// Emit renders the delimited statement sequence, "{}" when empty. The output
// is a pure function of the parsed tree: emitting twice yields identical
// text.
func (c *Contents) Emit() string {
	if c.Empty() {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range c.block.List {
		var sb bytes.Buffer
		if err := printer.Fprint(&sb, c.fset, stmt); err != nil {
			// Statements only enter a Contents already well formed, so a
			// printer failure is a corrupted tree, not a recoverable input.
			panic(fmt.Errorf("emit statement: %w", err))
		}
		for _, line := range strings.Split(sb.String(), "\n") {
			b.WriteString("\t")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("}")
	return b.String()
}

// newSyntaxError converts a parser failure into a *SyntaxError located at
// the first offending token, remapped from wrapper to anchor coordinates.
func newSyntaxError(err error, anchor Anchor) error {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]
		return &SyntaxError{Pos: remap(first.Pos, anchor), Msg: first.Msg}
	}
	return &SyntaxError{
		Pos: token.Position{Filename: anchor.Filename, Line: anchor.Line, Column: anchor.Column},
		Msg: err.Error(),
	}
}

func remap(pos token.Position, anchor Anchor) token.Position {
	line := pos.Line - headerLines
	if line < 1 {
		line = 1
	}
	col := pos.Column
	if line == 1 {
		col += anchor.Column - 1
	}
	return token.Position{
		Filename: anchor.Filename,
		Line:     anchor.Line - 1 + line,
		Column:   col,
	}
}
