package recipe

import (
	"github.com/viant/rewrite/execctx"
	"github.com/viant/rewrite/tree"
	"github.com/viant/rewrite/visit"
)

// Base supplies the defaults spec.md §4.2 marks optional: no
// applicability predicates, an identity whole-batch Visit, no
// children, and a single cycle. Embed it and override DisplayName and
// Visitor at minimum; override whichever other methods a concrete
// recipe needs.
type Base struct{}

func (Base) Validate(execctx.Context) Validated { return Valid() }

func (Base) ApplicableTest() visit.Visitor[tree.SourceFile] { return nil }

func (Base) SingleSourceApplicableTest() visit.Visitor[tree.SourceFile] { return nil }

func (Base) Visit(files []tree.SourceFile, _ execctx.Context) ([]tree.SourceFile, error) {
	return files, nil
}

func (Base) Children() []Recipe { return nil }

func (Base) CausesAnotherCycle() bool { return false }
