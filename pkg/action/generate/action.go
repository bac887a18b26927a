package generate

import (
	"log/slog"
	"os"
	"path"

	"settergen/pkg/builder"
)

// Generate runs one scan-and-emit pass and writes the generated file.
func Generate(o *builder.Options) {
	g, err := builder.NewWithOpts(o)
	if err != nil {
		panic(err)
	}
	if err = g.Parse(); err != nil {
		panic(err)
	}
	f, err := g.GenerateFile()
	if err != nil {
		panic(err)
	}
	_ = os.MkdirAll(g.Opts.OutDir, 0755)
	outFile := path.Clean(g.Opts.OutDir + "/" + g.Opts.OutFile)
	ff, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}
	err = f.Render(ff)
	if err != nil {
		panic(err)
	}
	_ = ff.Close()
	slog.With("file", outFile, "types", g.TypeCount()).Info("wrote generated setters")
}
