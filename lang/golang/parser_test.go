package golang_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/lang/golang"
	"github.com/viant/rewrite/metrics"
	"github.com/viant/rewrite/spi"
)

// recordingSink captures ObserveParse calls so tests can assert the
// parse timer actually fires, without pulling in a real metrics.Sink.
type recordingSink struct {
	metrics.NoopSink
	fileTypes []string
	oks       []bool
}

func (s *recordingSink) ObserveParse(fileType string, ok bool, _ time.Duration) {
	s.fileTypes = append(s.fileTypes, fileType)
	s.oks = append(s.oks, ok)
}

func TestParser_Accept(t *testing.T) {
	var p golang.Parser
	assert.True(t, p.Accept("main.go"))
	assert.True(t, p.Accept("pkg/util.go"))
	assert.False(t, p.Accept("main.java"))
}

func TestParser_ParseInputs(t *testing.T) {
	src := []byte("package demo\n\nfunc F() {}\n")

	inputs := []spi.Input{{
		Path:   "/root/demo/main.go",
		Source: func() ([]byte, error) { return src, nil },
	}}

	var errs []error
	ctx := execctx.New(execctx.WithOnError(func(err error) { errs = append(errs, err) }))

	var p golang.Parser
	sink := &recordingSink{}
	files := p.ParseInputs(inputs, "/root/demo", ctx, sink)

	assert.Empty(t, errs)
	assert.Len(t, files, 1)
	gf := files[0].(*golang.File)
	assert.Equal(t, "main.go", gf.SourcePath())
	assert.Equal(t, "demo", gf.AST().Name.Name)
	assert.Equal(t, []string{"go"}, sink.fileTypes)
	assert.Equal(t, []bool{true}, sink.oks)
}

func TestParser_ParseInputs_ReportsSyntaxError(t *testing.T) {
	inputs := []spi.Input{{
		Path:   "broken.go",
		Source: func() ([]byte, error) { return []byte("not valid go"), nil },
	}}

	var errs []error
	ctx := execctx.New(execctx.WithOnError(func(err error) { errs = append(errs, err) }))

	var p golang.Parser
	sink := &recordingSink{}
	files := p.ParseInputs(inputs, "", ctx, sink)

	assert.Empty(t, files)
	assert.Len(t, errs, 1)
	assert.Equal(t, []string{"go"}, sink.fileTypes)
	assert.Equal(t, []bool{false}, sink.oks)
}
