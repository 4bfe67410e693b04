package destination

import (
	"fmt"

	"github.com/TalentFormula/rtfdoc/doctables"
	"github.com/TalentFormula/rtfdoc/group"
)

// ColorTableDest populates the shared color table from a \colortbl group.
// Unlike \fonttbl, color entries share one flat group: \red, \green, \blue
// accumulate directly on that group's property map, and each ';' commits a
// color from whatever triple is currently set, then clears it so the next
// triple starts fresh. Grounded on the reference Python parser's
// ColorTable.write, which has exactly this shape.
type ColorTableDest struct {
	Unsupported
	colors *doctables.Colors
}

// NewColorTableDest builds a ColorTableDest appending into colors.
func NewColorTableDest(colors *doctables.Colors) *ColorTableDest {
	return &ColorTableDest{Unsupported: Unsupported{Name: "color table"}, colors: colors}
}

func (ct *ColorTableDest) Write(text string, props group.PropertyMap) error {
	for _, r := range text {
		if r != ';' {
			return fmt.Errorf("color table: unexpected text %q (expected ';')", string(r))
		}
		col := doctables.Color{
			Red:   byte(props.Int("red", 0)),
			Green: byte(props.Int("green", 0)),
			Blue:  byte(props.Int("blue", 0)),
		}
		ct.colors.Append(col)
		props.Delete("red")
		props.Delete("green")
		props.Delete("blue")
	}
	return nil
}
