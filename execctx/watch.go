package execctx

import (
	"sync/atomic"
	"time"
)

// Watch decorates a Context to record whether any message write has
// happened since the last reset. The scheduler wraps the caller's
// context in a Watch once per run and consults HasNewMessages between
// cycles to decide whether a recipe "asked" for another pass by
// communicating through a message rather than by changing a file.
type Watch struct {
	inner Context
	dirty atomic.Bool
}

// NewWatch wraps ctx. ctx itself is left untouched; all writes must go
// through the returned Watch for them to be observed.
func NewWatch(ctx Context) *Watch {
	return &Watch{inner: ctx}
}

func (w *Watch) Message(key string) (any, bool) { return w.inner.Message(key) }

func (w *Watch) PutMessage(key string, value any) {
	w.dirty.Store(true)
	w.inner.PutMessage(key, value)
}

func (w *Watch) OnError(err error)   { w.inner.OnError(err) }
func (w *Watch) OnTimeout(err error) { w.inner.OnTimeout(err) }

func (w *Watch) RunTimeout(nFiles int) time.Duration { return w.inner.RunTimeout(nFiles) }

func (w *Watch) Panic() { w.PutMessage(PanicKey, true) }

func (w *Watch) Panicked() bool { return w.inner.Panicked() }

// HasNewMessages reports whether PutMessage has been called since
// construction or the last ResetHasNewMessages.
func (w *Watch) HasNewMessages() bool { return w.dirty.Load() }

// ResetHasNewMessages clears the dirty flag at the start of a new cycle.
func (w *Watch) ResetHasNewMessages() { w.dirty.Store(false) }
