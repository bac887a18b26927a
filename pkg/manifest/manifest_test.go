package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyManifest(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, m.Snapshots)
	assert.Empty(t, m.CurrentVersion)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifests", "settergen.manifest.yaml")

	m := &Manifest{}
	m.AddSnapshot(Snapshot{Package: "widget", Version: "v1", File: "widget/setters_gen.go", Types: 2})
	m.AddSnapshot(Snapshot{Package: "widget", Version: "v2", File: "widget/setters_gen.go", Types: 3})
	require.NoError(t, m.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.CurrentVersion)
	assert.Equal(t, "v1", got.PreviousVersion)
	require.Len(t, got.Snapshots, 2)
	assert.Equal(t, "widget/setters_gen.go", got.SnapshotFile("v2"))
}

func TestAddSnapshotDeduplicates(t *testing.T) {
	m := &Manifest{}
	m.AddSnapshot(Snapshot{Package: "widget", Version: "v1", Types: 2})
	m.AddSnapshot(Snapshot{Package: "widget", Version: "v1", Types: 3})

	require.Len(t, m.Snapshots, 1)
	assert.Equal(t, 3, m.Snapshots[0].Types)
	assert.Equal(t, "v1", m.CurrentVersion)
	assert.Empty(t, m.PreviousVersion)
}
