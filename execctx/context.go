// Package execctx implements the per-run scratchpad recipes and the
// scheduler share: a message map recipes use to talk to each other
// across cycles, an error sink, a timeout policy, and a cooperative
// panic flag.
package execctx

import (
	"sync"
	"time"
)

// PanicKey is the well-known message key the cooperative panic flag is
// stored under. It is a message like any other so that Panic can reuse
// the existing message-watch machinery instead of needing its own.
const PanicKey = "org.viant.rewrite.panic"

// Context is the execution context threaded through a scheduler run.
// Recipes read and write messages through it, and it is the sink for
// errors and timeouts the scheduler cannot let abort a run.
type Context interface {
	// Message returns a previously stored value for key.
	Message(key string) (any, bool)
	// PutMessage stores value under key, visible to later cycles and,
	// within the same visit, to sibling per-file tasks that read it
	// after the write happens-before them.
	PutMessage(key string, value any)

	// OnError reports a recoverable error: a parse failure, a visitor
	// panic recovery, or a timeout. The run continues.
	OnError(err error)
	// OnTimeout reports that a recipe-visit exceeded RunTimeout. Called
	// in addition to, never instead of, OnError.
	OnTimeout(err error)
	// RunTimeout returns how long a single recipe-visit over nFiles
	// files may run before per-file tasks start short-circuiting.
	RunTimeout(nFiles int) time.Duration

	// Panic marks the run for cooperative termination.
	Panic()
	// Panicked reports whether Panic has been called.
	Panicked() bool
}

// OnErrorFunc and OnTimeoutFunc let callers configure a Base context
// with plain functions instead of implementing the whole interface.
type OnErrorFunc func(error)
type OnTimeoutFunc func(error)
type RunTimeoutFunc func(nFiles int) time.Duration

// Base is the default Context implementation. Its message map is
// guarded by a lock. OnError, OnTimeout and RunTimeout call the
// functions configured at construction directly, without a lock; a
// scheduler run calls them, like Message and PutMessage, from several
// per-file goroutines at once.
type Base struct {
	mu       sync.RWMutex
	messages map[string]any

	onError    OnErrorFunc
	onTimeout  OnTimeoutFunc
	runTimeout RunTimeoutFunc
}

// Option configures a Base context at construction.
type Option func(*Base)

// WithOnError sets the error sink. The default is a no-op.
func WithOnError(fn OnErrorFunc) Option { return func(b *Base) { b.onError = fn } }

// WithOnTimeout sets the timeout sink. The default is a no-op.
func WithOnTimeout(fn OnTimeoutFunc) Option { return func(b *Base) { b.onTimeout = fn } }

// WithRunTimeout sets the per-recipe-visit timeout policy. The default
// never times out.
func WithRunTimeout(fn RunTimeoutFunc) Option { return func(b *Base) { b.runTimeout = fn } }

// New creates a Base execution context. With no options, errors and
// timeouts are silently dropped and no timeout is ever enforced -
// callers that care must supply WithOnError et al.
func New(opts ...Option) *Base {
	b := &Base{
		messages:   make(map[string]any),
		onError:    func(error) {},
		onTimeout:  func(error) {},
		runTimeout: func(int) time.Duration { return time.Duration(1<<63 - 1) },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Base) Message(key string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.messages[key]
	return v, ok
}

func (b *Base) PutMessage(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages[key] = value
}

func (b *Base) OnError(err error) {
	if err == nil {
		return
	}
	b.onError(err)
}

func (b *Base) OnTimeout(err error) {
	if err == nil {
		return
	}
	b.onTimeout(err)
}

func (b *Base) RunTimeout(nFiles int) time.Duration {
	return b.runTimeout(nFiles)
}

func (b *Base) Panic() {
	b.PutMessage(PanicKey, true)
}

func (b *Base) Panicked() bool {
	_, ok := b.Message(PanicKey)
	return ok
}
