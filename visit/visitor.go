// Package visit implements the generic traversal contract every
// recipe edit and predicate is built from: a function from a tree
// (usually a tree.SourceFile) to a tree of the same type, with the
// hard rule that a visitor performing no edit returns the exact same
// value it received.
//
// spec.md §2 calls this "a generic traversal that returns a possibly
// new tree"; Go's generics express that directly as a single
// interface parameterized over the tree type.
package visit

import "github.com/viant/rewrite/execctx"

// Visitor is a polymorphic traversal over a value of type T, producing
// a value of the same type. The structural-sharing contract - return
// the same instance when nothing changed - is what lets the scheduler
// detect "this visit changed something" with a plain identity check
// instead of a deep comparison.
type Visitor[T any] interface {
	Visit(ctx execctx.Context, t T) (T, error)
}

// Func adapts a plain function to a Visitor, the way http.HandlerFunc
// adapts a function to http.Handler.
type Func[T any] func(ctx execctx.Context, t T) (T, error)

func (f Func[T]) Visit(ctx execctx.Context, t T) (T, error) {
	return f(ctx, t)
}

// Identity returns a Visitor that always returns its argument
// unchanged: the per-file edit of a recipe that makes no per-file
// change. recipe.Recipe's optional predicates default to nil, not to
// Identity.
func Identity[T any]() Visitor[T] {
	return Func[T](func(_ execctx.Context, t T) (T, error) { return t, nil })
}
