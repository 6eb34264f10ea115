package tree

import "github.com/viant/rewrite/marker"

// SourceFile is a lossless tree rooted at a typed, language-specific
// node. Concrete language plugins (lang/golang, lang/java, lang/jsx)
// implement it; the recipe engine never inspects what is underneath.
//
// SourceFile values are immutable: every transformation that changes a
// file produces a new value rather than mutating the one it received.
// Concrete implementations must be reference types (pointers) so that
// two SourceFile interface values compare equal with == exactly when
// they wrap the same underlying instance - that comparison is the
// scheduler's sole "did anything change" signal (spec.md §3, "Identity
// equality is the no-op signal").
type SourceFile interface {
	// ID is stable across transformations of the same logical file.
	ID() ID
	// SourcePath is the file's logical path, relative to whatever root
	// the batch was parsed from.
	SourcePath() string
	// Markers is the file's out-of-band metadata bag.
	Markers() marker.Set
	// WithMarkers returns a copy of the file with markers replacing its
	// current marker set.
	WithMarkers(markers marker.Set) SourceFile
	// WithSourcePath returns a copy of the file at a new logical path,
	// with the same id and content. Used by rename-style recipes.
	WithSourcePath(path string) SourceFile
}
