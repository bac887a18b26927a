package cmd

import (
	"github.com/spf13/cobra"

	"settergen/pkg/action/generate"
	"settergen/pkg/builder"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	options := builder.NewOptions()

	// generateCmd represents the settergen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate setters",
		Long:  "Generate chained setter methods for every type marked with the settergen doc comment",
		Run: func(c *cobra.Command, args []string) {
			generate.Generate(options)
		},
	}
	generateCmd.PersistentFlags().StringVarP(&options.InDir, "input-directory", "i", ".", "directory to scan")
	generateCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "", "directory to write the generated file (defaults to the input directory)")
	generateCmd.PersistentFlags().StringVarP(&options.OutFile, "output-file", "f", "setters_gen.go", "output file where methods will be written")
	generateCmd.PersistentFlags().StringVarP(&options.Marker, "marker", "m", builder.DefaultMarker, "doc comment line that selects a type")
	generateCmd.PersistentFlags().BoolVarP(&options.CopyDocs, "copy-docs", "d", true, "copy field doc comments onto generated setters")
	generateCmd.PersistentFlags().BoolVarP(&options.AppendHelpers, "append-helpers", "a", false, "generate AddXxx helpers for slice fields")

	return generateCmd
}
