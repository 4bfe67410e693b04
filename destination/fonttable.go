package destination

import (
	"fmt"
	"strings"

	"github.com/TalentFormula/rtfdoc/doctables"
	"github.com/TalentFormula/rtfdoc/group"
)

// FontTableDest populates the shared font table from a \fonttbl group's
// children. Each font definition is ordinarily its own nested `{...}`
// group carrying its own \fN/family/\fcharsetN properties, but FontTableDest
// doesn't care about nesting: it only looks at the properties active on
// whichever group calls Write, accumulating display-name text until a ';'
// terminator registers the entry. Grounded on the teacher's OLE2 font-table
// parsing in formatting.go, generalized from a fixed binary record to an
// accumulate-until-terminator text destination, the same shape the
// reference Python parser's FontTable.write uses.
type FontTableDest struct {
	Unsupported
	fonts *doctables.Fonts
	buf   strings.Builder
}

// NewFontTableDest builds a FontTableDest appending into fonts.
func NewFontTableDest(fonts *doctables.Fonts) *FontTableDest {
	return &FontTableDest{Unsupported: Unsupported{Name: "font table"}, fonts: fonts}
}

func (ft *FontTableDest) Write(text string, props group.PropertyMap) error {
	for _, r := range text {
		if r != ';' {
			ft.buf.WriteRune(r)
			continue
		}
		name := ft.buf.String()
		ft.buf.Reset()
		idx, ok := props.Get("f")
		if !ok || idx.Kind != group.KindInt {
			return fmt.Errorf("font table: font definition missing \\f index")
		}
		font := doctables.Font{Name: name, Family: props.String("family", "")}
		if fc, ok := props.Get("fcharset"); ok && fc.Kind == group.KindInt {
			font.Fcharset = fc.Int
			font.HasFchar = true
		}
		ft.fonts.Register(idx.Int, font)
	}
	return nil
}
