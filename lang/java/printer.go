package java

import (
	"fmt"
	"io"

	"github.com/viant/rewrite/tree"
)

// Printer renders a *File by reproducing its original source bytes.
// Java files are read-only batch members: nothing in this module
// edits their tree-sitter tree, so lossless printing is exactly
// returning the bytes the parser was given.
type Printer struct{}

func (Printer) Print(file tree.SourceFile, w io.Writer) error {
	f, ok := file.(*File)
	if !ok {
		return fmt.Errorf("java.Printer: %T is not a *java.File", file)
	}
	_, err := w.Write(f.source)
	return err
}
