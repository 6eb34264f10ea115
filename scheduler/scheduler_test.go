package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/internal/testfile"
	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/recipe"
	"github.com/viant/rewrite/scheduler"
	"github.com/viant/rewrite/tree"
	"github.com/viant/rewrite/visit"
)

// identityRecipe changes nothing; every scenario that expects a
// no-op run uses it as the control.
type identityRecipe struct{ recipe.Base }

func (identityRecipe) DisplayName() string                    { return "identity" }
func (identityRecipe) Visitor() visit.Visitor[tree.SourceFile] { return visit.Identity[tree.SourceFile]() }

func TestScheduler_NoOpRecipeProducesNoResults(t *testing.T) {
	f := testfile.New("a.txt", "hello")
	sched := scheduler.New(scheduler.WithConcurrency(1))

	results, err := sched.Run(identityRecipe{}, []tree.SourceFile{f}, execctx.New(), 1, 1)

	assert.NoError(t, err)
	assert.Empty(t, results)
}

// renameRecipe renames one path to another, leaving content alone.
type renameRecipe struct {
	recipe.Base
	From, To string
}

func (r renameRecipe) DisplayName() string { return "rename" }
func (r renameRecipe) Visitor() visit.Visitor[tree.SourceFile] {
	return visit.Func[tree.SourceFile](func(_ execctx.Context, f tree.SourceFile) (tree.SourceFile, error) {
		if f.SourcePath() != r.From {
			return f, nil
		}
		return f.WithSourcePath(r.To), nil
	})
}

func TestScheduler_RenamePath(t *testing.T) {
	f := testfile.New("old.txt", "hello")
	sched := scheduler.New(scheduler.WithConcurrency(1))

	results, err := sched.Run(renameRecipe{From: "old.txt", To: "new.txt"}, []tree.SourceFile{f}, execctx.New(), 1, 1)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	r := results[0]
	assert.False(t, r.Added())
	assert.False(t, r.Deleted())
	assert.Equal(t, "old.txt", r.Before.SourcePath())
	assert.Equal(t, "new.txt", r.After.SourcePath())
	assert.Len(t, r.Recipes, 1)
}

// note is a marker with no Hashable implementation: adding it must be
// invisible to the marker-aware canonicalizer.
type note struct{}

func (note) Kind() marker.Kind { return "org.example.note" }

type markerOnlyRecipe struct{ recipe.Base }

func (markerOnlyRecipe) DisplayName() string { return "marker-only" }
func (markerOnlyRecipe) Visitor() visit.Visitor[tree.SourceFile] {
	return visit.Func[tree.SourceFile](func(_ execctx.Context, f tree.SourceFile) (tree.SourceFile, error) {
		return f.WithMarkers(f.Markers().With(note{})), nil
	})
}

func TestScheduler_MarkerOnlyChangeIsInvisibleWithPrinter(t *testing.T) {
	f := testfile.New("a.txt", "same")
	sched := scheduler.New(scheduler.WithConcurrency(1), scheduler.WithPrinter(testfile.Printer{}))

	results, err := sched.Run(markerOnlyRecipe{}, []tree.SourceFile{f}, execctx.New(), 1, 1)

	assert.NoError(t, err)
	assert.Empty(t, results)
}

// widenRecipe generates a brand new file alongside whatever it was
// handed, exercising the whole-batch Visit step's widening path.
type widenRecipe struct{ recipe.Base }

func (widenRecipe) DisplayName() string { return "widen" }
func (widenRecipe) Visitor() visit.Visitor[tree.SourceFile] { return visit.Identity[tree.SourceFile]() }
func (widenRecipe) Visit(files []tree.SourceFile, _ execctx.Context) ([]tree.SourceFile, error) {
	generated := testfile.New("generated.txt", "generated")
	return append(append([]tree.SourceFile{}, files...), generated), nil
}

func TestScheduler_GenerationByWidening(t *testing.T) {
	f := testfile.New("a.txt", "hello")
	sched := scheduler.New(scheduler.WithConcurrency(1))

	results, err := sched.Run(widenRecipe{}, []tree.SourceFile{f}, execctx.New(), 1, 1)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	r := results[0]
	assert.True(t, r.Added())
	assert.Equal(t, "generated.txt", r.After.SourcePath())
	assert.Len(t, r.Recipes, 1)
}

// deleteRecipe removes a single named file from the batch.
type deleteRecipe struct {
	recipe.Base
	Path string
}

func (r deleteRecipe) DisplayName() string { return "delete" }
func (r deleteRecipe) Visitor() visit.Visitor[tree.SourceFile] {
	return visit.Func[tree.SourceFile](func(_ execctx.Context, f tree.SourceFile) (tree.SourceFile, error) {
		if f.SourcePath() == r.Path {
			return nil, nil
		}
		return f, nil
	})
}

func TestScheduler_Deletion(t *testing.T) {
	keep := testfile.New("keep.txt", "keep")
	gone := testfile.New("gone.txt", "gone")
	sched := scheduler.New(scheduler.WithConcurrency(1))

	results, err := sched.Run(deleteRecipe{Path: "gone.txt"}, []tree.SourceFile{keep, gone}, execctx.New(), 1, 1)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	r := results[0]
	assert.True(t, r.Deleted())
	assert.Equal(t, "gone.txt", r.Before.SourcePath())
	assert.Len(t, r.Recipes, 1)
}

// sleepingRecipe renames every file it reaches; under a timeout policy
// that is already exceeded when the visit starts it reaches none,
// exercising the per-visit timeout path.
type sleepingRecipe struct{ recipe.Base }

func (sleepingRecipe) DisplayName() string { return "sleeping" }
func (sleepingRecipe) Visitor() visit.Visitor[tree.SourceFile] {
	return visit.Func[tree.SourceFile](func(_ execctx.Context, f tree.SourceFile) (tree.SourceFile, error) {
		return f.WithSourcePath(f.SourcePath() + ".edited"), nil
	})
}

func TestScheduler_Timeout(t *testing.T) {
	f := testfile.New("a.txt", "hello")
	sched := scheduler.New(scheduler.WithConcurrency(1))

	var errs []error
	var timeouts []error
	ctx := execctx.New(
		execctx.WithOnError(func(err error) { errs = append(errs, err) }),
		execctx.WithOnTimeout(func(err error) { timeouts = append(timeouts, err) }),
		execctx.WithRunTimeout(func(int) time.Duration { return -1 }),
	)

	results, err := sched.Run(sleepingRecipe{}, []tree.SourceFile{f}, ctx, 1, 1)

	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.Len(t, timeouts, 1)
	assert.Len(t, errs, 1)
	var timeoutErr *execctx.RecipeTimeoutError
	assert.ErrorAs(t, timeouts[0], &timeoutErr)
}

// panicChild flips the cooperative panic flag; laterChild must never
// run once it has.
type panicChild struct{ recipe.Base }

func (panicChild) DisplayName() string { return "panic-child" }
func (panicChild) Visitor() visit.Visitor[tree.SourceFile] {
	return visit.Func[tree.SourceFile](func(ctx execctx.Context, f tree.SourceFile) (tree.SourceFile, error) {
		ctx.Panic()
		return f, nil
	})
}

type laterChild struct{ recipe.Base }

func (laterChild) DisplayName() string { return "later-child" }
func (laterChild) Visitor() visit.Visitor[tree.SourceFile] {
	return visit.Func[tree.SourceFile](func(_ execctx.Context, f tree.SourceFile) (tree.SourceFile, error) {
		return f.WithSourcePath("should-not-run.txt"), nil
	})
}

type compositeRecipe struct {
	recipe.Base
	children []recipe.Recipe
}

func (compositeRecipe) DisplayName() string { return "composite" }
func (compositeRecipe) Visitor() visit.Visitor[tree.SourceFile] {
	return visit.Identity[tree.SourceFile]()
}
func (c compositeRecipe) Children() []recipe.Recipe { return c.children }

func TestScheduler_PanicMidCompositionSkipsLaterChildren(t *testing.T) {
	f := testfile.New("a.txt", "hello")
	root := compositeRecipe{children: []recipe.Recipe{panicChild{}, laterChild{}}}
	sched := scheduler.New(scheduler.WithConcurrency(1))

	results, err := sched.Run(root, []tree.SourceFile{f}, execctx.New(), 1, 1)

	assert.NoError(t, err)
	assert.Empty(t, results)
}

// chainRenameRecipe walks a file through a fixed sequence of paths,
// one hop per cycle, and asks for another cycle every time - the
// convergence scenario spec.md describes for CausesAnotherCycle.
type chainRenameRecipe struct {
	recipe.Base
	hops map[string]string
}

func (chainRenameRecipe) DisplayName() string { return "chain-rename" }
func (r chainRenameRecipe) Visitor() visit.Visitor[tree.SourceFile] {
	return visit.Func[tree.SourceFile](func(_ execctx.Context, f tree.SourceFile) (tree.SourceFile, error) {
		next, ok := r.hops[f.SourcePath()]
		if !ok {
			return f, nil
		}
		return f.WithSourcePath(next), nil
	})
}
func (chainRenameRecipe) CausesAnotherCycle() bool { return true }

func TestScheduler_CycleConvergence(t *testing.T) {
	f := testfile.New("step0", "hello")
	root := chainRenameRecipe{hops: map[string]string{"step0": "step1", "step1": "step2"}}
	sched := scheduler.New(scheduler.WithConcurrency(1))

	results, err := sched.Run(root, []tree.SourceFile{f}, execctx.New(), 3, 1)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "step2", results[0].After.SourcePath())
	assert.Len(t, results[0].Recipes, 1)
}
