package destination

import (
	"fmt"

	"github.com/TalentFormula/rtfdoc/group"
)

// Unsupported provides the default write/par/page-break behavior spec.md §4.4
// requires: every destination event defaults to failing with a descriptive
// error unless a concrete destination overrides it. Destinations embed this
// and override only the events they actually support.
type Unsupported struct {
	// Name identifies the destination in error messages ("font table",
	// "root", ...).
	Name string
}

func (u Unsupported) Write(text string, props group.PropertyMap) error {
	return fmt.Errorf("%s destination does not accept text %q", u.Name, text)
}

func (u Unsupported) Par(props group.PropertyMap) error {
	return fmt.Errorf("%s destination does not accept a paragraph break", u.Name)
}

func (u Unsupported) PageBreak(props group.PropertyMap) error {
	return fmt.Errorf("%s destination does not accept a page break", u.Name)
}

func (u Unsupported) Close() error { return nil }
