package result

import (
	"bytes"
	"encoding/hex"

	"github.com/viant/rewrite/marker"
	"github.com/viant/rewrite/spi"
	"github.com/viant/rewrite/tree"
)

// canonicalPrint renders file the way spec.md §4.4's marker-aware
// canonicalizer does: a "markers[hash]->" prefix carrying every
// marker's fingerprint except attribution, followed by the printer's
// own text. Two files canonicalize identically iff neither their
// printed text nor any non-attribution marker differs - which is
// exactly the "changed" test the Result Builder needs.
//
// The core does not define the shape of an LST (spec.md §1's
// non-goal), so this walks markers at the SourceFile root only, not at
// every sub-node; every marker kind spec.md itself defines (Generated,
// RecipesThatMadeChanges) is file-scoped, so this is a faithful,
// simplified specialization - recorded as an Open Question decision in
// DESIGN.md rather than silently assumed.
//
// printer may be nil: without one, canonicalPrint reports only the
// marker prefix, and Build falls back to treating any pointer
// difference as a change (see Build's doc comment).
func canonicalPrint(printer spi.Printer, file tree.SourceFile) (string, error) {
	var buf bytes.Buffer

	hash := file.Markers().HashExcluding(marker.KindRecipesThatMadeChanges)
	if len(hash) > 0 {
		buf.WriteString("markers[")
		buf.WriteString(hex.EncodeToString(hash))
		buf.WriteString("]->")
	}

	if printer != nil {
		if err := printer.Print(file, &buf); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}
