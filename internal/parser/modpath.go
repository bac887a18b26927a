package parser

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// resolvePkgPath derives the import path of dir from the enclosing module's
// go.mod, walking up the way the go tool does. It is the fallback used when
// package loading found no marked declarations to take the path from.
func resolvePkgPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	modDir := abs
	for {
		if _, statErr := os.Stat(filepath.Join(modDir, "go.mod")); statErr == nil {
			break
		}
		parent := filepath.Dir(modDir)
		if parent == modDir {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		modDir = parent
	}

	data, err := os.ReadFile(filepath.Join(modDir, "go.mod"))
	if err != nil {
		return "", err
	}
	mf, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return "", fmt.Errorf("parse go.mod: %w", err)
	}
	if mf.Module == nil {
		return "", fmt.Errorf("go.mod in %s has no module directive", modDir)
	}

	rel, err := filepath.Rel(modDir, abs)
	if err != nil {
		return "", err
	}
	pkgPath := mf.Module.Mod.Path
	if rel != "." {
		pkgPath = path.Join(pkgPath, filepath.ToSlash(rel))
	}
	if err := module.CheckImportPath(pkgPath); err != nil {
		return "", err
	}
	return pkgPath, nil
}
