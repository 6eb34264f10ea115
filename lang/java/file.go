// Package java implements a read-only Java plugin over
// github.com/smacker/go-tree-sitter, adapted from inspector/java's own
// tree-sitter usage. It parses Java files so they can ride along
// unedited in a multi-language batch (spec.md's widening scenario) but
// carries no recipes of its own: this module's structural-editing
// example lives in lang/golang, which has a real AST to edit.
package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/tree"
)

// File wraps a tree-sitter parse of one Java source file. Root is
// exposed for any future recipe that wants to inspect it, but nothing
// in this package edits it.
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
