// Package destination implements the closed set of destination variants
// spec.md §4.4 and §4.5 describe: the sinks a group's text, paragraph, and
// page-break events route to, switched by the control-word dispatcher. It
// plays the role the teacher's streams package plays for a .doc file's
// fixed set of stream readers, adapted from "one Go type per OLE2 stream"
// to "one Go type per RTF destination variant", each wrapping whatever
// state that destination accumulates before emitting it on close.
package destination

import (
	"github.com/TalentFormula/rtfdoc/format"
	"github.com/TalentFormula/rtfdoc/numbering"
)

// Output is the user-facing sink for semantic parser events (spec.md §6).
// A caller supplies one when starting a parse; everything else in this
// package exists to route bytes into calls on it.
type Output interface {
	// Write delivers a run of decoded text under the formatting in effect
	// at the time it was written.
	Write(text string, view format.View) error
	// Par delivers a paragraph break.
	Par(view format.View) error
	// PageBreak delivers a page break.
	PageBreak(view format.View) error
	// PlainText delivers \pntext content when plain-text capture is
	// enabled, separately from ordinary body text.
	PlainText(text string) error
	// Hyperlink delivers a resolved HYPERLINK field: the link's display
	// text and its target URL.
	Hyperlink(text, url string) error
	// NumberingOn delivers a list-numbering context becoming active.
	NumberingOn(n *numbering.Numbering) error
	// NumberingOff delivers a list-numbering context ending.
	NumberingOff(n *numbering.Numbering) error
	// EndDoc delivers end-of-stream.
	EndDoc() error
}
