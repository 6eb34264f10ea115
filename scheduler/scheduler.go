// Package scheduler drives cycles: it walks a recipe tree depth-first,
// fans out per-file visits concurrently, composes recipe trees via an
// explicit recipe stack, enforces timeouts and panics, and records
// deletions (spec.md §2, §4.3).
package scheduler

import (
	"sync"
	"time"

	"github.com/viant/rewrite/attribution"
	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/metrics"
	"github.com/viant/rewrite/recipe"
	"github.com/viant/rewrite/result"
	"github.com/viant/rewrite/spi"
	"github.com/viant/rewrite/tree"
)

// Scheduler runs a recipe tree over a batch of files to a fixed point.
// The zero value is not usable; construct with New.
type Scheduler struct {
	metrics     metrics.Sink
	concurrency int
	printer     spi.Printer
}

// Option configures a Scheduler at construction.
type Option func(*Scheduler)

// WithMetrics sets the telemetry sink. The default is metrics.NoopSink.
func WithMetrics(sink metrics.Sink) Option {
	return func(s *Scheduler) { s.metrics = sink }
}

// WithConcurrency bounds how many per-file visits run at once within a
// single recipe-visit. n <= 0 means unbounded (limited only by
// runtime.GOMAXPROCS via the underlying goroutine scheduler); n == 1
// yields the deterministic sequential execution spec.md §5 calls out
// as the substitution tests make.
func WithConcurrency(n int) Option {
	return func(s *Scheduler) { s.concurrency = n }
}

// WithPrinter supplies the printer the Result Builder uses to tell a
// genuine content change apart from a recipe that merely reallocated a
// file without altering what it prints as. Without one, any file the
// scheduler hands back under a new pointer is reported as changed
// outright - see result.WithPrinter.
func WithPrinter(p spi.Printer) Option {
	return func(s *Scheduler) { s.printer = p }
}

// New builds a Scheduler ready to Run.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{metrics: metrics.NoopSink{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run applies root to before repeatedly, up to maxCycles times, until
// a fixed point is reached (no file reference changed and no message
// was written) - but never before minCycles passes - then returns the
// diff between before and the final batch (spec.md §4.3, §4.4).
func (s *Scheduler) Run(
	root recipe.Recipe,
	before []tree.SourceFile,
	ctx execctx.Context,
	maxCycles, minCycles int,
) ([]result.Result, error) {
	deletions := attribution.NewDeletionMap()
	watched := execctx.NewWatch(ctx)

	acc := before
	after := acc
	for i := 0; i < maxCycles; i++ {
		stack := recipe.NewStack(root)

		var err error
		var changed bool
		after, changed, err = s.visit(stack, acc, watched, deletions)
		if err != nil {
			return nil, err
		}

		fixedPoint := !changed && !watched.HasNewMessages()
		if i+1 >= minCycles && (fixedPoint || !root.CausesAnotherCycle()) {
			break
		}
		acc = after
		watched.ResetHasNewMessages()
	}

	if recipe.SameFiles(after, before) {
		return nil, nil
	}

	var opts []result.BuildOption
	if s.printer != nil {
		opts = append(opts, result.WithPrinter(s.printer))
	}
	return result.Build(before, after, deletions, opts...)
}

// visit applies the recipe at the top of stack to files, then
// recurses into its children in declared order, honoring the panic
// flag between children (spec.md §4.3's "Per-recipe visit"). The
// returned bool reports whether this recipe or any of its children
// actually edited, added, removed, or reordered a file - the signal
// Run's cycle loop uses to detect a fixed point. It is tracked
// explicitly rather than inferred from slice identity, because
// mapAsync always allocates a fresh output slice even when every file
// in it is untouched.
func (s *Scheduler) visit(
	stack recipe.Stack,
	files []tree.SourceFile,
	ctx execctx.Context,
	deletions *attribution.DeletionMap,
) ([]tree.SourceFile, bool, error) {
	r, _ := stack[len(stack)-1].(recipe.Recipe)

	if test := r.ApplicableTest(); test != nil {
		applicable := false
		for _, f := range files {
			changed, err := test.Visit(ctx, f)
			if err != nil {
				ctx.OnError(err)
				continue
			}
			if changed != f {
				applicable = true
				break
			}
		}
		if !applicable {
			return files, false, nil
		}
	}

	s.metrics.RecordRunSize(r.DisplayName(), len(files))

	var after []tree.SourceFile
	var changed bool
	if !r.Validate(ctx).IsValid() {
		after = files
	} else {
		var err error
		after, changed, err = s.mapAsync(stack, files, ctx, deletions)
		if err != nil {
			return nil, false, err
		}
	}

	widened, err := r.Visit(after, ctx)
	if err != nil {
		return nil, false, err
	}
	if !recipe.SameFiles(widened, after) {
		widened = s.decorateWidened(stack, after, widened, deletions)
		changed = true
	}

	for _, child := range r.Children() {
		if ctx.Panicked() {
			return widened, changed, nil
		}
		childFiles, childChanged, err := s.visit(stack.Push(child), widened, ctx, deletions)
		if err != nil {
			return nil, false, err
		}
		widened = childFiles
		changed = changed || childChanged
	}

	return widened, changed, nil
}

// decorateWidened handles the whole-batch Visit step's bookkeeping:
// files present in widened but not in after are newly generated;
// files present in after but not in widened were deleted; files
// present in both but with a different pointer picked up an
// attribution marker (spec.md §4.3 step 3).
func (s *Scheduler) decorateWidened(
	stack recipe.Stack,
	after, widened []tree.SourceFile,
	deletions *attribution.DeletionMap,
) []tree.SourceFile {
	byID := make(map[tree.ID]tree.SourceFile, len(after))
	for _, f := range after {
		byID[f.ID()] = f
	}

	out := make([]tree.SourceFile, len(widened))
	seen := make(map[tree.ID]bool, len(widened))
	for i, f := range widened {
		seen[f.ID()] = true
		original, existed := byID[f.ID()]
		switch {
		case !existed:
			deletions.Set(attribution.FrameKey(f.ID()), stack)
			out[i] = f
		case f != original:
			out[i] = attributeChange(f, stack)
		default:
			out[i] = f
		}
	}

	for _, f := range after {
		if !seen[f.ID()] {
			deletions.Set(attribution.FrameKey(f.ID()), stack)
		}
	}

	return out
}

func attributeChange(f tree.SourceFile, stack recipe.Stack) tree.SourceFile {
	m := f.Markers().With(marker.NewRecipesThatMadeChanges(stack))
	return f.WithMarkers(m)
}

// mapAsync applies recipe's per-file edit to every file concurrently,
// preserving input order in the result (spec.md §4.3's "Map-async").
// The concurrency primitive is golang.org/x/sync's errgroup: exactly
// the schedule/await_all pair spec.md §5 asks the core to be built
// against, without pinning the core to a specific pool implementation.
// The returned bool reports whether any file was actually edited or
// deleted, tracked per-slot alongside the edit itself since the output
// slice is always freshly allocated regardless of whether anything in
// it changed.
func (s *Scheduler) mapAsync(
	stack recipe.Stack,
	files []tree.SourceFile,
	ctx execctx.Context,
	deletions *attribution.DeletionMap,
) ([]tree.SourceFile, bool, error) {
	r, _ := stack[len(stack)-1].(recipe.Recipe)

	out := make([]tree.SourceFile, len(files))
	touched := make([]bool, len(files))
	start := time.Now()
	var timeoutOnce sync.Once

	group, sem := newGroup(s.concurrency)
	for i, f := range files {
		i, f := i, f
		sem.acquire()
		group.Go(func() error {
			defer sem.release()
			edited := s.perFileApply(r, stack, f, ctx, start, &timeoutOnce, len(files), deletions)
			out[i] = edited
			touched[i] = edited != f
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, false, err
	}

	changed := false
	for _, t := range touched {
		if t {
			changed = true
			break
		}
	}
	return compact(out), changed, nil
}

// compact drops the nil slots perFileApply leaves behind for deleted
// files, preserving the order of what remains.
func compact(files []tree.SourceFile) []tree.SourceFile {
	out := files[:0]
	for _, f := range files {
		if f != nil {
			out = append(out, f)
		}
	}
	return out
}

func (s *Scheduler) perFileApply(
	r recipe.Recipe,
	stack recipe.Stack,
	f tree.SourceFile,
	ctx execctx.Context,
	visitStart time.Time,
	timeoutOnce *sync.Once,
	batchSize int,
	deletions *attribution.DeletionMap,
) tree.SourceFile {
	visitTimerStart := time.Now()
	name := r.DisplayName()

	if test := r.SingleSourceApplicableTest(); test != nil {
		unchanged, err := test.Visit(ctx, f)
		if err == nil && unchanged == f {
			s.metrics.ObserveVisit(name, metrics.OutcomeSkipped, time.Since(visitTimerStart))
			return f
		}
	}

	if time.Since(visitStart) > ctx.RunTimeout(batchSize) {
		timeoutOnce.Do(func() {
			err := &execctx.RecipeTimeoutError{Recipe: name}
			ctx.OnError(err)
			ctx.OnTimeout(err)
		})
		s.metrics.ObserveVisit(name, metrics.OutcomeTimeout, time.Since(visitTimerStart))
		return f
	}

	if ctx.Panicked() {
		return f
	}

	after, err := safeVisit(r.Visitor(), ctx, f)
	if err != nil {
		ctx.OnError(&execctx.VisitorError{Recipe: name, Path: f.SourcePath(), Err: err})
		s.metrics.ObserveVisit(name, metrics.OutcomeError, time.Since(visitTimerStart))
		return f
	}

	switch {
	case after == f:
		s.metrics.ObserveVisit(name, metrics.OutcomeUnchanged, time.Since(visitTimerStart))
		return f
	case after == nil:
		deletions.Set(attribution.FrameKey(f.ID()), stack)
		s.metrics.ObserveVisit(name, metrics.OutcomeDeleted, time.Since(visitTimerStart))
		return nil
	default:
		attributed := attributeChange(after, stack)
		s.metrics.ObserveVisit(name, metrics.OutcomeChanged, time.Since(visitTimerStart))
		return attributed
	}
}

// safeVisit recovers a panicking visitor and turns it into an error,
// so one broken recipe cannot take down a whole scheduler run
// (spec.md §7: per-file errors are contained within the run).
func safeVisit(v interface {
	Visit(execctx.Context, tree.SourceFile) (tree.SourceFile, error)
}, ctx execctx.Context, f tree.SourceFile) (result tree.SourceFile, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = &panicValue{v: r}
			}
		}
	}()
	return v.Visit(ctx, f)
}

type panicValue struct{ v any }

func (p *panicValue) Error() string { return "recipe visitor panicked" }
