// Package builder generates chained setter methods for marked struct types:
// one setter per named field, assigning the argument and returning the
// receiver so calls chain without re-binding.
package builder

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"settergen/internal/gen"
	"settergen/internal/parser"
)

// ShapeError is returned when a marked type is not a named-field struct.
type ShapeError = gen.ShapeError

// Generator ties the scanning and emission halves together for one run.
type Generator struct {
	Opts *Options

	parser *parser.Parser
}

func New(opts ...Option) (*Generator, error) {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOpts(o)
}

func NewWithOpts(o *Options) (*Generator, error) {
	o.Normalize()
	g := &Generator{
		Opts:   o,
		parser: parser.New(parser.Config{Dir: o.InDir, Marker: o.Marker}),
	}
	return g, nil
}

// Parse scans the configured directory and collects marked declarations.
func (g *Generator) Parse() error {
	return g.parser.Parse()
}

// TypeCount reports how many marked declarations the scan found.
func (g *Generator) TypeCount() int {
	return len(g.parser.Decls)
}

// GenerateFile assembles the setter methods of every marked type into one
// file belonging to the scanned package. A marked type with the wrong shape
// aborts the whole run: there is no sensible partial output.
func (g *Generator) GenerateFile() (*jen.File, error) {
	if len(g.parser.Decls) == 0 {
		return nil, fmt.Errorf("no types marked %q under %s", g.Opts.Marker, g.Opts.InDir)
	}

	f := jen.NewFilePathName(g.parser.PkgPath, g.parser.PkgName)
	f.HeaderComment("Code generated by settergen. DO NOT EDIT.")

	for _, decl := range g.parser.Decls {
		methods, err := gen.Methods(decl, g.genOptions())
		if err != nil {
			return nil, err
		}
		for _, m := range methods {
			f.Add(m)
			f.Line()
		}
	}
	return f, nil
}

func (g *Generator) genOptions() gen.Options {
	return gen.Options{
		CopyDocs:      g.Opts.CopyDocs,
		AppendHelpers: g.Opts.AppendHelpers,
	}
}
