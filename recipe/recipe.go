// Package recipe defines the unit of transformation the scheduler
// composes and applies: a display name, a validator, optional
// applicability predicates, a visitor factory, a list of child
// recipes, and a "may cause another cycle" flag (spec.md §4.2).
package recipe

import (
	"github.com/viant/rewrite/attribution"
	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/tree"
	"github.com/viant/rewrite/visit"
)

// Stack is a recipe.Recipe attribution path; see attribution.Stack.
type Stack = attribution.Stack

// NewStack starts a stack at root.
func NewStack(root Recipe) Stack { return attribution.NewStack(root) }

// Recipe is a composable transformation over a batch of source files.
// Recipes form a tree, not a DAG: Children must never introduce a
// cycle back to an ancestor recipe.
type Recipe interface {
	// DisplayName identifies the recipe in metrics and attribution.
	DisplayName() string

	// Validate reports whether the recipe is configured correctly. An
	// invalid recipe's per-file step is skipped for the run, but its
	// children still run (spec.md §4.2).
	Validate(ctx execctx.Context) Validated

	// ApplicableTest, if non-nil, gates the whole recipe (including its
	// children): the recipe only runs if this visitor would change at
	// least one file in the batch.
	ApplicableTest() visit.Visitor[tree.SourceFile]

	// SingleSourceApplicableTest, if non-nil, gates each file
	// individually: a file this visitor would not change is skipped for
	// this recipe's own edit step (but still flows to children).
	SingleSourceApplicableTest() visit.Visitor[tree.SourceFile]

	// Visitor is the recipe's per-file edit.
	Visitor() visit.Visitor[tree.SourceFile]

	// Visit is the recipe's whole-batch step: it may add, replace, or
	// remove files, and may widen the batch with files of a language
	// not present in the input. The default is identity: return the
	// exact same slice header received.
	Visit(files []tree.SourceFile, ctx execctx.Context) ([]tree.SourceFile, error)

	// Children lists this recipe's sub-recipes, applied in order after
	// this recipe's own edit step.
	Children() []Recipe

	// CausesAnotherCycle reports whether a change made by this recipe
	// (or its children) should trigger another pass over the batch.
	CausesAnotherCycle() bool
}

// SameFiles reports whether a and b are the same slice value - same
// backing array, same length - which is how the scheduler detects that
// Recipe.Visit did not widen or otherwise replace the batch (spec.md
// §9's design note on identity: Go slices carry a backing-array
// identity, so no extra "changed" flag is needed).
func SameFiles(a, b []tree.SourceFile) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
