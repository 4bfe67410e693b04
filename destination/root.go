package destination

import (
	"fmt"

	"github.com/TalentFormula/rtfdoc/group"
)

// Root is the root group's permanent destination (spec.md §3: "the Root
// group's destination accepts only a single NUL character"). The driver
// never writes a literal NUL to it in practice, so any text reaching Root
// means a \rtf destination switch never happened before text was written
// at the top level, which is a structural error; the NUL case is kept only
// because the specification names it explicitly.
type Root struct {
	Unsupported
}

// NewRoot returns a Root destination.
func NewRoot() *Root {
	return &Root{Unsupported: Unsupported{Name: "root"}}
}

func (r *Root) Write(text string, props group.PropertyMap) error {
	if text == "\x00" {
		return nil
	}
	return fmt.Errorf("root destination received text %q before an \\rtf destination switch", text)
}
