package destination

import (
	"github.com/TalentFormula/rtfdoc/docheader"
	"github.com/TalentFormula/rtfdoc/doctables"
	"github.com/TalentFormula/rtfdoc/format"
	"github.com/TalentFormula/rtfdoc/group"
)

// OutputDest adapts a caller-supplied Output to the group.Destination
// interface, resolving each group's raw property map into a format.View
// against the parser's shared tables before forwarding the event. This is
// the destination \rtf installs at the top of the document.
type OutputDest struct {
	out    Output
	fonts  *doctables.Fonts
	colors *doctables.Colors
	header *docheader.Header
}

// NewOutputDest builds an OutputDest delivering to out.
func NewOutputDest(out Output, fonts *doctables.Fonts, colors *doctables.Colors, header *docheader.Header) *OutputDest {
	return &OutputDest{out: out, fonts: fonts, colors: colors, header: header}
}

func (o *OutputDest) view(props group.PropertyMap) format.View {
	return format.NewView(props, o.fonts, o.colors, o.header)
}

func (o *OutputDest) Write(text string, props group.PropertyMap) error {
	return o.out.Write(text, o.view(props))
}

func (o *OutputDest) Par(props group.PropertyMap) error {
	return o.out.Par(o.view(props))
}

func (o *OutputDest) PageBreak(props group.PropertyMap) error {
	return o.out.PageBreak(o.view(props))
}

func (o *OutputDest) Close() error { return nil }
