package destination

import "github.com/TalentFormula/rtfdoc/numbering"

// NumberingDest is the destination \pn installs. It never accepts direct
// text itself — the before/after glyphs arrive through \pntxtb/\pntxta
// TextSetter children bound to n.Before/n.After — and on close it notifies
// Output that numbering has become active. Output is told numbering has
// ended separately, by the control dispatcher's \pard handler, since a
// \pn group typically closes well before the \pard that ends its scope.
type NumberingDest struct {
	Unsupported
	n   *numbering.Numbering
	out Output
}

// NewNumberingDest builds a NumberingDest over n, notifying out on close.
func NewNumberingDest(n *numbering.Numbering, out Output) *NumberingDest {
	return &NumberingDest{Unsupported: Unsupported{Name: "pn"}, n: n, out: out}
}

func (nd *NumberingDest) Close() error {
	return nd.out.NumberingOn(nd.n)
}
