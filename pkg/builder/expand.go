package builder

import (
	"strings"

	"settergen/internal/gen"
	"settergen/internal/parser"
)

// Expand is the single-declaration surface: it parses the source text of one
// type declaration and returns that text followed by the generated setter
// methods, the whole of which re-parses as ordinary Go. Parse failures and
// shape failures abort with no output.
func Expand(src string, opts ...Option) (string, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}

	decl, err := parser.ParseDecl(src)
	if err != nil {
		return "", err
	}

	methods, err := gen.Methods(decl, gen.Options{CopyDocs: o.CopyDocs, AppendHelpers: o.AppendHelpers})
	if err != nil {
		return "", err
	}

	text, err := gen.Render(methods)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(src, "\n"))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(text, "\n"))
	b.WriteString("\n")
	return b.String(), nil
}
