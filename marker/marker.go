// Package marker implements the out-of-band metadata bag attached to
// every source file: a mapping from marker kind to one value of that
// kind, with a per-kind merge function registered at the kind level.
//
// The hashing scheme here is adapted from viant-linager's
// inspector/graph/hash.go, which used highwayhash only to fingerprint
// file content for change detection; here the same primitive backs
// the marker-aware canonicalizer's "every marker except attribution
// participates in the change signal" rule (spec.md §4.4).
package marker

import (
	"github.com/minio/highwayhash"
)

// Kind identifies a marker's type. Two markers of the same Kind occupy
// the same slot in a Set and are merged, rather than both retained.
type Kind string

// Marker is a tagged value carrying one of a finite set of kinds.
type Marker interface {
	Kind() Kind
}

// Hashable lets a marker contribute deterministic bytes to the
// marker-aware canonicalizer's hash. A marker that does not implement
// Hashable is invisible to that hash by design: a recipe can attach a
// pure bookkeeping marker without its mere presence tripping the
// "did this file change" signal.
type Hashable interface {
	Marker
	HashBytes() []byte
}

// MergeFunc combines two markers of the same kind into one, used when
// a marker is added to a Set that already holds one of that kind.
type MergeFunc func(existing, incoming Marker) Marker

var mergeFuncs = map[Kind]MergeFunc{}

// RegisterMerge installs the merge function used whenever two markers
// of kind collide in a Set. Built-in kinds register themselves in
// init(); callers may register their own implementation-defined kinds
// the same way.
func RegisterMerge(kind Kind, fn MergeFunc) {
	mergeFuncs[kind] = fn
}

// highwayKey is fixed and unexported: this hash is used only to detect
// equality between two canonicalizations of the same marker content
// within a single process run, never persisted or compared across
// versions of this package, so there is no key-rotation concern.
var highwayKey = []byte("rewrite-marker-canonicalizer-key")

func hashBytes(data []byte) uint64 {
	h, err := highwayhash.New64(highwayKey)
	if err != nil {
		// highwayhash.New64 only fails for a key of the wrong length;
		// highwayKey's length is fixed at compile time above.
		panic(err)
	}
	_, _ = h.Write(data)
	return h.Sum64()
}
