package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"settergen/pkg/builder"
	"settergen/pkg/manifest"
)

// Generate runs a full generation pass, writes the generated setter file,
// and records it in the manifest under the provided version label.
func Generate(o *builder.Options, manifestPath, version string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	g, err := builder.NewWithOpts(o)
	if err != nil {
		return "", err
	}
	if err = g.Parse(); err != nil {
		return "", err
	}
	f, err := g.GenerateFile()
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(g.Opts.OutDir, 0o755); err != nil {
		return "", err
	}
	outFile := filepath.Clean(filepath.Join(g.Opts.OutDir, g.Opts.OutFile))
	ff, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if err = f.Render(ff); err != nil {
		_ = ff.Close()
		return "", err
	}
	if err = ff.Close(); err != nil {
		return "", err
	}

	m.AddSnapshot(manifest.Snapshot{
		Package: filepath.Base(g.Opts.InDir),
		Version: version,
		File:    outFile,
		Types:   g.TypeCount(),
	})

	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return outFile, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous snapshot files, and returns a textual diff of their contents.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", fmt.Errorf("no current/previous snapshots recorded")
	}

	currentPath := m.SnapshotFile(m.CurrentVersion)
	previousPath := m.SnapshotFile(m.PreviousVersion)

	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("snapshot files not found in manifest")
	}

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}

	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
