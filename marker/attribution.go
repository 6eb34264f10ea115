package marker

import "github.com/viant/rewrite/attribution"

// KindRecipesThatMadeChanges is the change-attribution marker's kind.
// It is always excluded from marker-aware canonicalization: recording
// which recipe touched a file must never itself count as a change.
const KindRecipesThatMadeChanges Kind = "org.viant.rewrite.marker.recipes-that-made-changes"

// RecipesThatMadeChanges records every recipe stack that has
// contributed a change to a file. Two markers of this kind merge by
// set-union over stack equality (spec.md §3).
type RecipesThatMadeChanges struct {
	Stacks []attribution.Stack
}

func (RecipesThatMadeChanges) Kind() Kind { return KindRecipesThatMadeChanges }

// NewRecipesThatMadeChanges builds a marker attributing a single stack.
func NewRecipesThatMadeChanges(stack attribution.Stack) RecipesThatMadeChanges {
	return RecipesThatMadeChanges{Stacks: []attribution.Stack{stack}}
}

func init() {
	RegisterMerge(KindRecipesThatMadeChanges, mergeRecipesThatMadeChanges)
}

func mergeRecipesThatMadeChanges(existing, incoming Marker) Marker {
	e := existing.(RecipesThatMadeChanges)
	i := incoming.(RecipesThatMadeChanges)
	merged := make([]attribution.Stack, len(e.Stacks), len(e.Stacks)+len(i.Stacks))
	copy(merged, e.Stacks)
	for _, s := range i.Stacks {
		found := false
		for _, existingStack := range merged {
			if existingStack.Equal(s) {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, s)
		}
	}
	return RecipesThatMadeChanges{Stacks: merged}
}
