// Package golang implements the Go-language plugin: a spi.Parser and
// spi.Printer backed directly by the standard library's own AST, and a
// handful of structural-editing recipes built on it. It is adapted
// from inspector/golang, but keeps the *ast.File itself rather than
// inspector/golang's read-only info.File/graph.File snapshot, since a
// recipe needs a tree it can hand back to go/printer, not a summary.
package golang

import (
	"go/ast"
	"go/token"

	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/tree"
)

// File is a tree.SourceFile wrapping a parsed Go AST. It is always
// handled through a pointer: two File values compare equal with == iff
// they share the same underlying instance, which is the scheduler's
// sole "did this change" signal (spec.md §3).
type File struct {
	id      tree.ID
	path    string
	fset    *token.FileSet
	astFile *ast.File
	markers marker.Set
}

// New wraps an already-parsed AST as a File. Only Parser calls this
// with a fresh id; recipes producing an edited File must go through
// WithAST, which carries the id forward.
func New(id tree.ID, path string, fset *token.FileSet, astFile *ast.File, markers marker.Set) *File {
	return &File{id: id, path: path, fset: fset, astFile: astFile, markers: markers}
}

func (f *File) ID() tree.ID          { return f.id }
func (f *File) SourcePath() string   { return f.path }
func (f *File) Markers() marker.Set  { return f.markers }
func (f *File) AST() *ast.File       { return f.astFile }
func (f *File) FileSet() *token.FileSet { return f.fset }

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

// WithAST returns a new File carrying astFile, the same id and path.
// astutil's own editing functions (AddImport and friends) mutate the
// *ast.File they're given in place, so callers pass the same astFile
// back here after editing it purely to obtain a fresh File identity
// for the scheduler's structural-sharing check - not because the AST
// pointer itself changed.
func (f *File) WithAST(astFile *ast.File) *File {
	clone := *f
	clone.astFile = astFile
	return &clone
}
