// Package testfile provides a minimal tree.SourceFile implementation
// used only by this module's own tests: a file that carries a string
// body and nothing else, so scheduler and result tests can exercise
// identity, renaming, and deletion without depending on a real
// language plugin.
package testfile

import (
	"io"

	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/tree"
)

type File struct {
	id      tree.ID
	path    string
	Body    string
	markers marker.Set
}

func New(path, body string) *File {
	return &File{id: tree.NewID(), path: path, Body: body}
}

func (f *File) ID() tree.ID         { return f.id }
func (f *File) SourcePath() string  { return f.path }
func (f *File) Markers() marker.Set { return f.markers }

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

// WithBody returns a new File with the same id and path but a
// different body - the shape most test recipes edit through.
func (f *File) WithBody(body string) *File {
	clone := *f
	clone.Body = body
	return &clone
}

// Printer writes a File's Body back out verbatim. It lets tests
// exercise the marker-aware canonicalizer without a real language
// plugin: two Files with the same Body print identically regardless
// of what non-attribution markers they carry.
type Printer struct{}

func (Printer) Print(file tree.SourceFile, w io.Writer) error {
	f := file.(*File)
	_, err := io.WriteString(w, f.Body)
	return err
}
