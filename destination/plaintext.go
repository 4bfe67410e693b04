package destination

import "github.com/TalentFormula/rtfdoc/group"

// PlainText wraps an Output and forwards write as plain_text instead of an
// ordinary body-text event (spec.md §4.4: "used inside \pntext to carry
// list-marker glyphs separately from body text"). \pntext switches to this
// destination only when the caller has enabled plain-text capture;
// otherwise \pntext routes to NullDevice instead.
type PlainText struct {
	Unsupported
	out Output
}

// NewPlainText wraps out.
func NewPlainText(out Output) *PlainText {
	return &PlainText{Unsupported: Unsupported{Name: "pntext"}, out: out}
}

func (p *PlainText) Write(text string, props group.PropertyMap) error {
	return p.out.PlainText(text)
}
