// Command rewrite is a demo CLI wiring the recipe execution core to a
// real filesystem: it walks a directory, parses every file a
// registered language plugin accepts, runs a recipe tree over the
// batch, and writes changed files back - a runnable illustration of
// the library, not part of the library itself.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/lang/detect"
	"github.com/viant/rewrite/lang/golang"
	"github.com/viant/rewrite/lang/java"
	"github.com/viant/rewrite/lang/jsx"
	"github.com/viant/rewrite/metrics"
	"github.com/viant/rewrite/metrics/prom"
	"github.com/viant/rewrite/recipe"
	"github.com/viant/rewrite/recipe/yamlconfig"
	"github.com/viant/rewrite/result"
	"github.com/viant/rewrite/scheduler"
	"github.com/viant/rewrite/spi"
	"github.com/viant/rewrite/tree"
)

func main() {
	var (
		root        = flag.String("root", ".", "directory to run the recipe tree over")
		recipePath  = flag.String("recipe", "", "path to a YAML recipe tree; without one, a demo AddImport recipe runs")
		write       = flag.Bool("write", false, "write changed files back to disk instead of just reporting them")
		maxCycles   = flag.Int("max-cycles", 3, "maximum scheduler cycles")
		minCycles   = flag.Int("min-cycles", 1, "minimum scheduler cycles before checking for a fixed point")
		metricsAddr = flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090) instead of discarding them")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*root, *recipePath, *write, *maxCycles, *minCycles, *metricsAddr, logger); err != nil {
		logger.Error("rewrite failed", "error", err)
		os.Exit(1)
	}
}

func run(root, recipePath string, write bool, maxCycles, minCycles int, metricsAddr string, logger *slog.Logger) error {
	ctx := context.Background()
	fs := afs.New()

	if mod, err := detect.New().Detect(root); err == nil {
		logger.Info("detected module", "root", mod.Root, "import_path", mod.ImportPath)
	}

	sink := setupMetrics(metricsAddr, logger)

	parsers := []spi.Parser{golang.Parser{}, java.Parser{}, jsx.Parser{}}

	inputs, err := collectInputs(ctx, fs, root, parsers)
	if err != nil {
		return fmt.Errorf("collecting inputs: %w", err)
	}

	execCtx := execctx.New(
		execctx.WithOnError(func(err error) { logger.Warn("recipe error", "error", err) }),
		execctx.WithOnTimeout(func(err error) { logger.Warn("recipe timeout", "error", err) }),
	)

	var before []tree.SourceFile
	for _, p := range parsers {
		before = append(before, p.ParseInputs(inputs, root, execCtx, sink)...)
	}
	logger.Info("parsed batch", "files", len(before))

	recipeTree, err := loadRecipe(recipePath)
	if err != nil {
		return err
	}

	sched := scheduler.New(scheduler.WithPrinter(dispatchPrinter{}), scheduler.WithMetrics(sink))
	results, err := sched.Run(recipeTree, before, execCtx, maxCycles, minCycles)
	if err != nil {
		return fmt.Errorf("scheduler run: %w", err)
	}

	for _, r := range results {
		reportResult(logger, r)
		if write {
			if err := applyResult(ctx, fs, root, r); err != nil {
				return fmt.Errorf("applying result for %s: %w", resultPath(r), err)
			}
		}
	}

	return nil
}

// setupMetrics returns a metrics.Sink for the run. Without an address
// it discards everything; given one, it registers a prom.Sink on an
// isolated registry and serves it over HTTP in the background.
func setupMetrics(addr string, logger *slog.Logger) metrics.Sink {
	if addr == "" {
		return metrics.NoopSink{}
	}

	reg := prometheus.NewRegistry()
	sink := prom.New(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return sink
}

// loadRecipe builds the recipe tree to run: from a YAML declaration if
// recipePath is set, otherwise a small built-in demo recipe.
func loadRecipe(recipePath string) (recipe.Recipe, error) {
	if recipePath == "" {
		return &golang.AddImportRecipe{Path: "fmt"}, nil
	}

	data, err := os.ReadFile(recipePath)
	if err != nil {
		return nil, fmt.Errorf("reading recipe file: %w", err)
	}

	reg := yamlconfig.NewRegistry()
	golang.RegisterRecipes(reg)

	r, err := reg.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading recipe tree: %w", err)
	}
	return r, nil
}

// collectInputs walks root with filepath.Walk, then wraps each
// accepted file's bytes behind afs so its content isn't read until a
// parser actually wants it.
func collectInputs(ctx context.Context, fs afs.Service, root string, parsers []spi.Parser) ([]spi.Input, error) {
	var inputs []spi.Input
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		accepted := false
		for _, p := range parsers {
			if p.Accept(path) {
				accepted = true
				break
			}
		}
		if !accepted {
			return nil
		}

		location := path
		inputs = append(inputs, spi.Input{
			Path: location,
			Source: func() ([]byte, error) {
				return fs.DownloadWithURL(ctx, location)
			},
		})
		return nil
	})
	return inputs, err
}

// dispatchPrinter routes to the language plugin's printer based on the
// concrete SourceFile type, since a batch handed to the Result Builder
// may mix languages (the widening scenario).
type dispatchPrinter struct{}

func (dispatchPrinter) Print(file tree.SourceFile, w io.Writer) error {
	switch file.(type) {
	case *golang.File:
		return golang.Printer{}.Print(file, w)
	case *java.File:
		return java.Printer{}.Print(file, w)
	case *jsx.File:
		return jsx.Printer{}.Print(file, w)
	default:
		return fmt.Errorf("cmd/rewrite: no printer registered for %T", file)
	}
}

func reportResult(logger *slog.Logger, r result.Result) {
	switch {
	case r.Added():
		logger.Info("added", "path", r.After.SourcePath())
	case r.Deleted():
		logger.Info("deleted", "path", r.Before.SourcePath())
	default:
		logger.Info("changed", "path", r.After.SourcePath(), "recipes", len(r.Recipes))
	}
}

func resultPath(r result.Result) string {
	if r.After != nil {
		return r.After.SourcePath()
	}
	return r.Before.SourcePath()
}

func applyResult(ctx context.Context, fs afs.Service, root string, r result.Result) error {
	if r.Deleted() {
		return fs.Delete(ctx, filepath.Join(root, r.Before.SourcePath()))
	}

	var buf bytes.Buffer
	if err := (dispatchPrinter{}).Print(r.After, &buf); err != nil {
		return err
	}
	return fs.Upload(ctx, filepath.Join(root, r.After.SourcePath()), 0644, &buf)
}
