package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"settergen/pkg/action/snapshot"
	"settergen/pkg/builder"
)

func init() {
	rootCmd.AddCommand(NewSnapshotCommand())
}

func NewSnapshotCommand() *cobra.Command {
	var (
		options      = builder.NewOptions()
		manifestPath string
		version      string
	)

	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "generate setters and record the output in a manifest",
		Run: func(c *cobra.Command, args []string) {
			out, err := snapshot.Generate(options, manifestPath, version)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(out)
		},
	}
	snapshotCmd.PersistentFlags().StringVarP(&options.InDir, "input-directory", "i", ".", "directory to scan")
	snapshotCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "", "directory to write the generated file")
	snapshotCmd.PersistentFlags().StringVarP(&options.OutFile, "output-file", "f", "setters_gen.go", "output file where methods will be written")
	snapshotCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "settergen.manifest.yaml", "manifest file tracking generated snapshots")
	snapshotCmd.PersistentFlags().StringVar(&version, "snapshot-version", "v1", "version label recorded for this snapshot")

	var diffCmd = &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		Run: func(c *cobra.Command, args []string) {
			d, err := snapshot.DiffCurrentWithPrevious(manifestPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(d)
		},
	}
	snapshotCmd.AddCommand(diffCmd)

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		Run: func(c *cobra.Command, args []string) {
			m, err := snapshot.List(manifestPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, s := range m.Snapshots {
				fmt.Printf("%s\t%s\t%s\t%d types\n", s.Version, s.Package, s.File, s.Types)
			}
		},
	}
	snapshotCmd.AddCommand(listCmd)

	return snapshotCmd
}
