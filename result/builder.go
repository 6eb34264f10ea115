package result

import (
	"github.com/viant/rewrite/attribution"
	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/recipe"
	"github.com/viant/rewrite/spi"
	"github.com/viant/rewrite/tree"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	printer spi.Printer
}

// WithPrinter supplies the printer Build uses to tell a genuine content
// change apart from a recipe that merely reallocated a file without
// altering what it prints as (spec.md §4.4). Without one, Build falls
// back to trusting the scheduler's own pointer-identity guarantee: any
// file the scheduler handed back under a new pointer is reported as
// changed outright.
func WithPrinter(p spi.Printer) BuildOption {
	return func(c *buildConfig) { c.printer = p }
}

// Build diffs before against after by stable file identity and returns
// one Result per file that was added, changed, or deleted. Files whose
// pointer didn't change are omitted entirely, and so is any changed or
// deleted file whose before-value carries the Generated marker - a
// freshly added file is still reported even if it arrives pre-marked
// Generated (spec.md §3, §4.4).
//
// deletions must be the DeletionMap the same scheduler run populated:
// it is Build's only source for which recipe stack is responsible for
// a file that no longer exists in after, or that appeared in after
// with no corresponding id in before.
func Build(before, after []tree.SourceFile, deletions *attribution.DeletionMap, opts ...BuildOption) ([]Result, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	beforeByID := make(map[tree.ID]tree.SourceFile, len(before))
	for _, f := range before {
		beforeByID[f.ID()] = f
	}
	afterByID := make(map[tree.ID]tree.SourceFile, len(after))
	for _, f := range after {
		afterByID[f.ID()] = f
	}

	var results []Result

	for _, af := range after {
		bf, existed := beforeByID[af.ID()]
		if !existed {
			stack, _ := deletions.Get(attribution.FrameKey(af.ID()))
			results = append(results, Result{After: af, Recipes: stackSlice(stack)})
			continue
		}
		if isGenerated(bf) {
			continue
		}
		if bf == af {
			continue
		}

		same, err := sameContent(cfg.printer, bf, af)
		if err != nil {
			return nil, err
		}
		if same {
			continue
		}

		attributed, ok := af.Markers().Find(marker.KindRecipesThatMadeChanges)
		if !ok {
			return nil, &InvariantViolation{Path: af.SourcePath()}
		}
		results = append(results, Result{
			Before:  bf,
			After:   af,
			Recipes: attributed.(marker.RecipesThatMadeChanges).Stacks,
		})
	}

	for _, bf := range before {
		if isGenerated(bf) {
			continue
		}
		if _, existed := afterByID[bf.ID()]; existed {
			continue
		}
		stack, _ := deletions.Get(attribution.FrameKey(bf.ID()))
		results = append(results, Result{Before: bf, Recipes: stackSlice(stack)})
	}

	return results, nil
}

func isGenerated(f tree.SourceFile) bool {
	_, ok := f.Markers().Find(marker.KindGenerated)
	return ok
}

func stackSlice(s recipe.Stack) []recipe.Stack {
	if s == nil {
		return nil
	}
	return []recipe.Stack{s}
}

// sameContent reports whether bf and af canonicalize identically. A
// path change is always a change; with no printer configured, any
// pointer difference reaching this point already means the scheduler
// deliberately replaced the file, so it is trusted outright.
func sameContent(printer spi.Printer, bf, af tree.SourceFile) (bool, error) {
	if bf.SourcePath() != af.SourcePath() {
		return false, nil
	}
	if printer == nil {
		return false, nil
	}

	before, err := canonicalPrint(printer, bf)
	if err != nil {
		return false, err
	}
	afterText, err := canonicalPrint(printer, af)
	if err != nil {
		return false, err
	}
	return before == afterText, nil
}
