// Package jsx implements a read-only JSX/JavaScript plugin over
// github.com/smacker/go-tree-sitter, adapted from inspector/jsx's own
// tree-sitter usage. Like lang/java, it exists to let JSX files ride
// along unedited in a multi-language batch.
package jsx

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/tree"
)

// File wraps a tree-sitter parse of one JSX/JavaScript source file.
type File struct {
	id      tree.ID
	path    string
	source  []byte
	root    *sitter.Node
	markers marker.Set
}

func New(id tree.ID, path string, source []byte, root *sitter.Node, markers marker.Set) *File {
	return &File{id: id, path: path, source: source, root: root, markers: markers}
}

func (f *File) ID() tree.ID         { return f.id }
func (f *File) SourcePath() string  { return f.path }
func (f *File) Markers() marker.Set { return f.markers }
func (f *File) Root() *sitter.Node  { return f.root }

func (f *File) WithMarkers(m marker.Set) tree.SourceFile {
	clone := *f
	clone.markers = m
	return &clone
}

func (f *File) WithSourcePath(path string) tree.SourceFile {
	clone := *f
	clone.path = path
	return &clone
}
