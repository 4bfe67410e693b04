package destination

import "github.com/TalentFormula/rtfdoc/group"

// NullDevice silently discards every event. It is the destination for
// groups whose content the specification says MUST be parsed (so the
// group/brace structure stays balanced) but whose contents are otherwise
// discarded: unsupported destinations (filetbl, stylesheet, listtables,
// revtbl), unknown \*\dest groups, and \pntext when plain-text capture is
// off.
type NullDevice struct{}

func (NullDevice) Write(text string, props group.PropertyMap) error { return nil }
func (NullDevice) Par(props group.PropertyMap) error                { return nil }
func (NullDevice) PageBreak(props group.PropertyMap) error           { return nil }
func (NullDevice) Close() error                                     { return nil }
