package java

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/metrics"
	"github.com/viant/rewrite/spi"
	"github.com/viant/rewrite/tree"
)

// Parser implements spi.Parser for ".java" files, adapted from
// inspector/java.Inspector.InspectSource's parser.ParseCtx call.
type Parser struct{}

func (Parser) Accept(path string) bool {
	return strings.HasSuffix(path, ".java")
}

func (Parser) ParseInputs(sources []spi.Input, relativeTo string, ctx execctx.Context, sink metrics.Sink) []tree.SourceFile {
	var out []tree.SourceFile
	for _, in := range sources {
		if !strings.HasSuffix(in.Path, ".java") {
			continue
		}
		src, err := in.Source()
		if err != nil {
			ctx.OnError(&execctx.ParseError{Path: in.Path, Err: err})
			continue
		}

		p := sitter.NewParser()
		p.SetLanguage(java.GetLanguage())
		start := time.Now()
		parsed, err := p.ParseCtx(context.Background(), nil, src)
		sink.ObserveParse("java", err == nil, time.Since(start))
		if err != nil {
			ctx.OnError(&execctx.ParseError{Path: in.Path, Err: err})
			continue
		}

		out = append(out, New(tree.NewID(), relativize(relativeTo, in.Path), src, parsed.RootNode(), marker.NewSet()))
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
