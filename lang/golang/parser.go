package golang

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/metrics"
	"github.com/viant/rewrite/spi"
	"github.com/viant/rewrite/tree"
)

// Parser implements spi.Parser for ".go" files, adapted from
// inspector/golang.Inspector.InspectSource - the same parser.ParseFile
// call, kept per-file rather than shared, since spec.md requires
// SourceFile values to be independently immutable.
type Parser struct{}

func (Parser) Accept(path string) bool {
	return strings.HasSuffix(path, ".go")
}

// ParseInputs parses every ".go" input, dropping and reporting any
// file that fails to parse rather than aborting the batch (spec.md §6).
func (Parser) ParseInputs(sources []spi.Input, relativeTo string, ctx execctx.Context, sink metrics.Sink) []tree.SourceFile {
	var out []tree.SourceFile
	for _, in := range sources {
		if !strings.HasSuffix(in.Path, ".go") {
			continue
		}
		src, err := in.Source()
		if err != nil {
			ctx.OnError(&execctx.ParseError{Path: in.Path, Err: err})
			continue
		}

		fset := token.NewFileSet()
		start := time.Now()
		astFile, err := parser.ParseFile(fset, in.Path, src, parser.ParseComments)
		sink.ObserveParse("go", err == nil, time.Since(start))
		if err != nil {
			ctx.OnError(&execctx.ParseError{Path: in.Path, Err: err})
			continue
		}

		out = append(out, New(tree.NewID(), relativize(relativeTo, in.Path), fset, astFile, marker.NewSet()))
	}
	return out
}

func relativize(relativeTo, path string) string {
	if relativeTo == "" {
		return path
	}
	rel, err := filepath.Rel(relativeTo, path)
	if err != nil {
		return path
	}
	return rel
}
