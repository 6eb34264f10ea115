// Package detect locates the Go module a source tree belongs to,
// adapted from inspector/repository.Detector's project-root walk -
// narrowed to Go, since lang/golang is the only plugin that needs a
// module-qualified import path rather than just a filesystem path.
package detect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Module is the Go module that owns a source tree: its filesystem root
// and the import path declared by its go.mod.
type Module struct {
	Root       string
	ImportPath string
}

// Detector walks upward from a path looking for the nearest go.mod,
// the same marker-file search inspector/repository.Detector runs
// against a longer list of ecosystem markers (pom.xml, package.json,
// ...) - this module only ever needs the Go one.
type Detector struct {
	fs afs.Service
}

// New creates a Detector backed by afs, the way
// inspector/repository.Detector.extractGoModuleName reads go.mod
// through afs.New() before falling back to os.ReadFile.
func New() *Detector {
	return &Detector{fs: afs.New()}
}

// Detect finds the nearest go.mod above path (path itself if it names
// a directory containing one) and resolves the module it declares.
func (d *Detector) Detect(path string) (*Module, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	dir := absPath
	if fi, statErr := os.Stat(absPath); statErr == nil && !fi.IsDir() {
		dir = filepath.Dir(absPath)
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")

		content, err := d.fs.DownloadWithURL(context.Background(), goModPath)
		if err == nil && len(content) > 0 {
			mod, err := modfile.Parse(goModPath, content, nil)
			if err != nil {
				return nil, fmt.Errorf("detect: parse %s: %w", goModPath, err)
			}
			return &Module{Root: dir, ImportPath: mod.Module.Mod.Path}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("detect: no go.mod found above %s", path)
		}
		dir = parent
	}
}
