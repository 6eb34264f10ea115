package marker

// KindGenerated marks a file as machine-generated. A file whose
// before-value carries it is never reported as changed or deleted in
// scheduler results; a newly added file is still reported even if it
// carries it.
const KindGenerated Kind = "org.viant.rewrite.marker.generated"

// Generated marks a file as machine-generated. It carries no data of
// its own; its mere presence is what matters.
type Generated struct{}

func (Generated) Kind() Kind { return KindGenerated }

func (Generated) HashBytes() []byte { return []byte("generated") }
