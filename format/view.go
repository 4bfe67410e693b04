// Package format exposes the read-only current-formatting accessors the
// Output sink consults (spec.md §6): current font, foreground/background
// color, bold/italic/underline, alignment, font size. It is the same
// collection of derived, read-only character/paragraph properties the
// teacher's formatting.CharacterProperties and formatting.ParagraphProperties
// expose, adapted from "parsed once out of a CHPX/PAPX byte blob" to
// "computed on demand from the current group's property map", since RTF
// properties live in a live, scoped map rather than a flat binary record.
package format

import (
	"github.com/TalentFormula/rtfdoc/docheader"
	"github.com/TalentFormula/rtfdoc/doctables"
	"github.com/TalentFormula/rtfdoc/group"
)

// View is a read-only snapshot of the formatting in effect for one group's
// property map, resolved against the parser's shared font/color tables and
// document header.
type View struct {
	props  group.PropertyMap
	fonts  *doctables.Fonts
	colors *doctables.Colors
	header *docheader.Header
}

// NewView builds a View over props, resolved against the given shared
// tables.
func NewView(props group.PropertyMap, fonts *doctables.Fonts, colors *doctables.Colors, header *docheader.Header) View {
	return View{props: props, fonts: fonts, colors: colors, header: header}
}

// Bold reports whether \b is in effect.
func (v View) Bold() bool { return v.props.Bool("b") }

// Italic reports whether \i is in effect.
func (v View) Italic() bool { return v.props.Bool("i") }

// Strike reports whether \strike is in effect.
func (v View) Strike() bool { return v.props.Bool("strike") }

// Underline reports whether \ul (or a \ulKIND variant) is in effect, and
// the style suffix when one was given (empty for a plain \ul).
func (v View) Underline() (on bool, style string) {
	val, ok := v.props.Get("ul")
	if !ok {
		return false, ""
	}
	if val.Kind == group.KindString {
		return true, val.Str
	}
	return true, ""
}

// Alignment returns the current paragraph alignment: one of "l" (default),
// "c", "r", "j".
func (v View) Alignment() string {
	return v.props.String("q", "l")
}

// FontSize returns the current font size in half-points. 24 (12pt) is the
// conventional RTF default absent an explicit \fsN.
func (v View) FontSize() int {
	return v.props.Int("fs", 24)
}

// Font resolves the current \fN (or the document's \deff default) against
// the shared font table.
func (v View) Font() (doctables.Font, bool) {
	idx := v.props.Int("f", v.header.DefaultFont)
	if idx < 0 {
		return doctables.Font{}, false
	}
	return v.fonts.Get(idx)
}

// ForegroundColor resolves the current \cfN against the shared color
// table.
func (v View) ForegroundColor() (doctables.Color, bool) {
	idx := v.props.Int("cf", -1)
	if idx < 0 {
		return doctables.Color{}, false
	}
	return v.colors.Get(idx)
}

// BackgroundColor resolves the current \cbN against the shared color
// table.
func (v View) BackgroundColor() (doctables.Color, bool) {
	idx := v.props.Int("cb", -1)
	if idx < 0 {
		return doctables.Color{}, false
	}
	return v.colors.Get(idx)
}
