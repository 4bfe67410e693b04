// Package docheader tracks the document-level state that isn't scoped to
// any single group: the RTF version, the default font index, and the
// resolved document charset. This plays the same role the teacher's fib
// package plays for a .doc file — a small, process-lifetime record of
// header-level facts other components consult — adapted from a fixed
// binary header layout to the handful of top-level control words
// (\rtf, \deff, \ansi/\pc/\pca/\mac, \ansicpgN) that establish it in RTF.
package docheader

import "github.com/TalentFormula/rtfdoc/charset"

// Header holds parser-lifetime, document-scoped facts.
type Header struct {
	// Version is the \rtfN version number; 0 if \rtf was never seen.
	Version int
	// DefaultFont is the \deffN default font table index, or -1 if unset.
	DefaultFont int
	// docCharset is the keyword-level charset (\ansi, \pc, \pca, \mac);
	// empty until one of those control words is seen.
	docCharset charset.Name
	// Codepage is the most recent \ansicpgN value, or -1 if unset.
	Codepage int
}

// New returns a Header with no default font and no codepage override yet.
func New() *Header {
	return &Header{DefaultFont: -1, Codepage: -1}
}

// SetVersion records the \rtf control word's parameter.
func (h *Header) SetVersion(n int) { h.Version = n }

// SetDefaultFont records \deffN.
func (h *Header) SetDefaultFont(n int) { h.DefaultFont = n }

// SetCharsetKeyword records one of \ansi, \pc, \pca, \mac.
func (h *Header) SetCharsetKeyword(name charset.Name) { h.docCharset = name }

// SetCodepage records \ansicpgN.
func (h *Header) SetCodepage(cp int) { h.Codepage = cp }

// DocumentCharset resolves the document-level (font-independent) charset,
// per spec.md §4.3's resolution order: an \ansicpgN override applies only
// when the document keyword is (or defaults to) ansi; \pc/\pca/\mac name a
// fixed encoding that ansicpg never overrides.
func (h *Header) DocumentCharset() charset.Name {
	if h.docCharset == "" || h.docCharset == charset.ANSI {
		if h.Codepage >= 0 {
			return charset.FromCodepage(h.Codepage)
		}
		return charset.ANSI
	}
	return h.docCharset
}
