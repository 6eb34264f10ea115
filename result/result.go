// Package result diffs the before-set against the after-set of a
// scheduler run by stable file identity, decides "changed" via a
// marker-aware canonical form, and attaches the recipe stacks
// responsible (spec.md §4.4).
package result

import (
	"github.com/viant/rewrite/recipe"
	"github.com/viant/rewrite/tree"
)

// Result is a transient in-memory record of one file's fate across a
// scheduler run. Before is nil for a newly generated file; After is
// nil for a deleted one; both are non-nil for a change or rename.
type Result struct {
	Before  tree.SourceFile
	After   tree.SourceFile
	Recipes []recipe.Stack
}

// Added reports whether this result represents a brand new file.
func (r Result) Added() bool { return r.Before == nil }

// Deleted reports whether this result represents a removed file.
func (r Result) Deleted() bool { return r.After == nil }
