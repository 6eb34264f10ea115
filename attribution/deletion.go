package attribution

import "sync"

// DeletionMap remembers, for a file id, the recipe stack responsible
// for either deleting that file or generating it from nothing. The two
// cases share one map by design: spec.md's own "Open question -
// deletion-map key reuse" is resolved as last-writer-wins.
//
// A file is deleted or generated at most once per recipe-visit, so
// concurrent writes only collide across distinct visits (a file
// deleted in one subtree and regenerated with the same id in another);
// DeletionMap makes no attempt to detect that beyond keeping the last
// writer, which is what spec.md asks for.
type DeletionMap struct {
	mu sync.Mutex
	m  map[FrameKey]Stack
}

// FrameKey is a comparable stand-in for the file identity DeletionMap
// keys entries by. It lives here, rather than being tree.ID directly,
// so this package does not need to import tree for the one field it
// actually needs a comparable key type for.
type FrameKey [16]byte

// NewDeletionMap creates an empty map ready for concurrent use.
func NewDeletionMap() *DeletionMap {
	return &DeletionMap{m: make(map[FrameKey]Stack)}
}

// Set records stack as responsible for id, overwriting any prior entry.
func (d *DeletionMap) Set(id FrameKey, stack Stack) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.m[id] = stack
}

// Get returns the stack recorded for id, if any.
func (d *DeletionMap) Get(id FrameKey) (Stack, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.m[id]
	return s, ok
}
