package jsx

import (
	"fmt"
	"io"

	"github.com/viant/rewrite/tree"
)

// Printer renders a *File by reproducing its original source bytes,
// mirroring lang/java.Printer: neither language plugin edits its
// tree-sitter tree in this module.
type Printer struct{}

func (Printer) Print(file tree.SourceFile, w io.Writer) error {
	f, ok := file.(*File)
	if !ok {
		return fmt.Errorf("jsx.Printer: %T is not a *jsx.File", file)
	}
	_, err := w.Write(f.source)
	return err
}
