package scheduler

import "golang.org/x/sync/errgroup"

// noopSemaphore lets mapAsync's call sites treat "unbounded" and
// "bounded" concurrency identically.
type noopSemaphore struct{}

func (noopSemaphore) acquire() {}
func (noopSemaphore) release() {}

type boundedSemaphore chan struct{}

func (b boundedSemaphore) acquire() { b <- struct{}{} }
func (b boundedSemaphore) release() { <-b }

type semaphore interface {
	acquire()
	release()
}

// newGroup returns an errgroup.Group and a semaphore honoring the
// scheduler's configured concurrency. errgroup already serializes
// error capture and provides Wait as await_all; the semaphore is the
// bound on how many of its goroutines may be mid-flight at once, since
// errgroup itself has no built-in limit prior to a size hint.
func newGroup(concurrency int) (*errgroup.Group, semaphore) {
	var g errgroup.Group
	if concurrency <= 0 {
		return &g, noopSemaphore{}
	}
	return &g, make(boundedSemaphore, concurrency)
}
