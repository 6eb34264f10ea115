// Package spi declares the external interfaces the recipe execution
// core consumes but does not implement: concrete parsers (one per
// source language) and the printer that renders a tree back to text
// (spec.md §6). Both are provided by lang/* packages in this module,
// but the core itself only ever depends on these interfaces.
package spi

import (
	"io"

	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/metrics"
	"github.com/viant/rewrite/tree"
)

// Input names one file a Parser should read and parse.
type Input struct {
	// Path is the file's location, interpreted by Source.
	Path string
	// Source lazily returns the file's bytes. Kept lazy so a Parser
	// that rejects a file via Accept never pays for a read.
	Source func() ([]byte, error)
}

// Parser turns source bytes into tree.SourceFile values. Parsers are
// the sole producers of fresh tree.IDs (spec.md §6): every other
// component that produces a SourceFile must carry an existing id
// forward.
type Parser interface {
	// Accept reports whether this parser handles files at path, usually
	// by extension.
	Accept(path string) bool
	// ParseInputs parses every input this parser accepts, recording each
	// file's source path relative to relativeTo. A file that fails to
	// parse is reported via ctx.OnError and omitted from the result
	// rather than aborting the batch. sink records the "parse" timer
	// for each attempt, tagged by file type and success/error.
	ParseInputs(sources []Input, relativeTo string, ctx execctx.Context, sink metrics.Sink) []tree.SourceFile
}

// Printer renders a tree.SourceFile back to text. It must be lossless
// on a file that has not been structurally edited since it was parsed.
type Printer interface {
	Print(file tree.SourceFile, w io.Writer) error
}
