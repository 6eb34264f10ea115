package golang

import (
	"fmt"
	"go/printer"
	"io"

	"github.com/viant/rewrite/tree"
)

// Printer implements spi.Printer for *File via go/printer, the same
// lossless-formatting primitive inspector/golang reaches for whenever
// it needs source text back out of an *ast.File.
type Printer struct{}

func (Printer) Print(file tree.SourceFile, w io.Writer) error {
	f, ok := file.(*File)
	if !ok {
		return fmt.Errorf("golang.Printer: %T is not a *golang.File", file)
	}
	cfg := printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}
	return cfg.Fprint(w, f.fset, f.astFile)
}
