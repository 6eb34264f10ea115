package result

import "fmt"

// InvariantViolation is returned by Build when a file's content
// changed between before and after but no recipe stack claimed
// responsibility for it - a scheduler bug, not a user-facing recipe
// error, since every code path that replaces a file's pointer is
// required to attach a RecipesThatMadeChanges marker before returning
// it (spec.md §4.4).
type InvariantViolation struct {
	Path string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s changed without attribution", e.Path)
}
