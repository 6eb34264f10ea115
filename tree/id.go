// Package tree defines the source file abstraction the recipe engine
// operates over: a stable identity, a logical path, and a marker bag,
// without prescribing the shape of the syntax tree underneath (that is
// left to concrete language plugins, per spec.md's non-goals).
package tree

import "github.com/oklog/ulid/v2"

// ID is a stable identity for a SourceFile, carried forward across
// every transformation that produces a new file value for the same
// logical file. Adopted from vsavkov-kilroy's use of ULIDs elsewhere
// in the retrieval pack: a 128-bit, lexicographically sortable,
// collision-resistant identifier is a better fit for "unique id per
// source file" (spec.md §2) than a bare random string, and sorts
// naturally by creation time when files are listed.
type ID [16]byte

// NewID mints a fresh, time-ordered identity. Only parsers may call
// this: parsers are the sole producers of SourceFile values with fresh
// ids (spec.md §6); every other transformation must carry the
// original id forward.
func NewID() ID {
	return ID(ulid.Make())
}

// String renders the id in ULID's canonical Crockford base32 form.
func (id ID) String() string {
	return ulid.ULID(id).String()
}

// IsZero reports whether id is the unset zero value.
func (id ID) IsZero() bool {
	return id == ID{}
}
