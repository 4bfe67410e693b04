package destination

import (
	"strings"

	"github.com/TalentFormula/rtfdoc/group"
)

// TextSetter accumulates a destination's written text and hands the
// complete string to assign exactly once, on close. It's the common shape
// behind every string-valued \info child (title, author, ...), the
// \pntxtb/\pntxta numbering glyphs, and \fldinst/\fldrslt — each just
// differs in where the assembled string ends up.
type TextSetter struct {
	Unsupported
	buf    strings.Builder
	assign func(string)
}

// NewTextSetter returns a TextSetter that calls assign with the
// accumulated text when its owning group closes.
func NewTextSetter(name string, assign func(string)) *TextSetter {
	return &TextSetter{Unsupported: Unsupported{Name: name}, assign: assign}
}

func (t *TextSetter) Write(text string, props group.PropertyMap) error {
	t.buf.WriteString(text)
	return nil
}

func (t *TextSetter) Close() error {
	if t.assign != nil {
		t.assign(t.buf.String())
	}
	return nil
}
