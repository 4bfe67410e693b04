// Package control implements the control-word dispatch table (spec.md
// §4.6): the keyword → behavior lookup that switches destinations, sets
// formatting properties, and resets paragraph/character state. It plays
// the role the teacher's structures package plays in decoding a fixed FKP
// byte layout into property changes — generalized here from "decode one
// binary exception" to "look up one control word" — adapted to dispatch
// over an open-ended, table-driven keyword set instead of a fixed binary
// layout.
package control

import (
	"fmt"
	"strings"
	"time"

	"github.com/TalentFormula/rtfdoc/charset"
	"github.com/TalentFormula/rtfdoc/destination"
	"github.com/TalentFormula/rtfdoc/docheader"
	"github.com/TalentFormula/rtfdoc/docinfo"
	"github.com/TalentFormula/rtfdoc/doctables"
	"github.com/TalentFormula/rtfdoc/group"
	"github.com/TalentFormula/rtfdoc/numbering"
)

// toggleSet is reset-to-false-or-true formatting words (spec.md §4.6 rule
// 2); param == 0 clears, any other value (including absent, treated as 1)
// sets.
var toggleSet = map[string]bool{
	"b": true, "i": true, "strike": true, "caps": true, "scaps": true,
	"shad": true, "outl": true, "v": true, "deleted": true, "ul": true,
}

// parfmtKeys are cleared by \pard.
var parfmtKeys = []string{
	"s", "hyphpar", "intbl", "keep", "nowidctlpar", "widctlpar", "keepn",
	"level", "noline", "outlinelevel", "pagebb", "sbys", "q", "fi", "li",
	"ri", "sb", "sa", "sl", "slmult", "subdocument", "rtlpar", "ltrpar",
}

// chrfmtKeys are cleared by \plain: the named character-formatting keys
// plus every toggle.
var chrfmtKeys = func() []string {
	keys := []string{
		"animtext", "charscalex", "dn", "embo", "impr", "sub", "expnd",
		"expndtw", "kerning", "f", "fs", "strikedl", "up", "super", "cf",
		"cb", "rtlch", "ltrch", "cs", "cchs", "lang",
	}
	for k := range toggleSet {
		keys = append(keys, k)
	}
	return keys
}()

var numberingStyles = map[string]bool{
	"pncard": true, "pndec": true, "pnucltr": true, "pnucrm": true,
	"pnlcltr": true, "pnlcrm": true, "pnord": true, "pnordt": true,
}

var unsupportedDests = map[string]bool{
	"filetbl": true, "stylesheet": true, "listtables": true, "revtbl": true,
}

var fontFamilies = map[string]bool{
	"fnil": true, "froman": true, "fswiss": true, "fmodern": true,
	"fscript": true, "fdecor": true, "ftech": true, "fbidi": true,
}

var textInfoFields = map[string]docinfo.StringField{
	"title": docinfo.FieldTitle, "subject": docinfo.FieldSubject,
	"author": docinfo.FieldAuthor, "manager": docinfo.FieldManager,
	"company": docinfo.FieldCompany, "operator": docinfo.FieldOperator,
	"category": docinfo.FieldCategory, "keywords": docinfo.FieldKeywords,
	"comment": docinfo.FieldComment, "doccomm": docinfo.FieldDocComment,
	"hlinkbase": docinfo.FieldHlinkBase,
}

var dateInfoFields = map[string]docinfo.DateField{
	"creatim": docinfo.FieldCreated, "revtim": docinfo.FieldRevised,
	"printim": docinfo.FieldPrinted, "buptim": docinfo.FieldBackedUp,
}

var ignoreWords = map[string]bool{
	"nouicompat": true, "viewkind": true,
}

// Escapes are the fixed set of escape words that produce a direct literal
// write (spec.md §4.6 pre-dispatch).
var Escapes = map[string]string{
	"line": "\n", "tab": "\t", "emdash": "—", "endash": "–",
	"lquote": "‘", "rquote": "’", "ldblquote": "“",
	"rdblquote": "”", "bullet": "•",
}

// Dispatcher holds the shared, document-lifetime state control-word
// handling consults or mutates: the header, shared tables, info record,
// Output sink, and the numbering/field objects currently under
// construction (neither of which is scoped to a single group the way
// ordinary properties are).
type Dispatcher struct {
	Header *docheader.Header
	Fonts  *doctables.Fonts
	Colors *doctables.Colors
	Info   *docinfo.Info
	Output destination.Output

	// PlainTextCapture controls whether \pntext content reaches Output as
	// plain_text or is discarded (spec.md §6).
	PlainTextCapture bool

	numbering *numbering.Numbering
	field     *destination.Field
}

// New builds a Dispatcher over the given shared, document-lifetime state.
func New(header *docheader.Header, fonts *doctables.Fonts, colors *doctables.Colors, info *docinfo.Info, out destination.Output) *Dispatcher {
	return &Dispatcher{Header: header, Fonts: fonts, Colors: colors, Info: info, Output: out}
}

// CurrentCharset resolves the encoding a \'hh escape decodes under right
// now (spec.md §4.3): the current font's \fcharset if one was explicitly
// set on a registered font, else the document-level charset.
func (d *Dispatcher) CurrentCharset(props group.PropertyMap) (charset.Name, error) {
	if idx, ok := props.Get("f"); ok && idx.Kind == group.KindInt {
		if font, ok := d.Fonts.Get(idx.Int); ok && font.HasFchar {
			return charset.FromFcharset(font.Fcharset, d.Header.DocumentCharset())
		}
	}
	return d.Header.DocumentCharset(), nil
}

// Handle dispatches one control word against grp, per the precedence order
// in spec.md §4.6. hasParam distinguishes "no parameter" from "parameter
// 0" for the words that care (the toggle set).
func (d *Dispatcher) Handle(word string, hasParam bool, param int, grp *group.Group) error {
	switch {
	case IsNamedInstruction(word):
		return d.dispatchNamed(word, hasParam, param, grp)

	case toggleSet[word]:
		if hasParam && param == 0 {
			grp.Props().Delete(word)
		} else {
			grp.Props().Set(word, group.VBool())
		}
		return nil

	case strings.HasPrefix(word, "q") && len(word) > 1 && isAlignSuffix(word[1:]):
		grp.Props().Set("q", group.VString(word[1:]))
		return nil

	case strings.HasPrefix(word, "ul") && len(word) > 2:
		grp.Props().Set("ul", group.VString(word[2:]))
		return nil

	case numberingStyles[word]:
		d.ensureNumbering(grp)
		d.numbering.Style = word
		return nil

	case strings.HasPrefix(word, "pn") && len(word) > 2:
		d.ensureNumbering(grp)
		if hasParam {
			d.numbering.Aux[word] = param
		} else {
			d.numbering.Aux[word] = 1
		}
		return nil

	case unsupportedDests[word]:
		grp.SetDestination(destination.NullDevice{})
		return nil

	case isDocCharsetKeyword(word):
		name, _ := charset.FromKeyword(word)
		d.Header.SetCharsetKeyword(name)
		return nil

	case fontFamilies[word]:
		grp.Props().Set("family", group.VString(word[1:]))
		return nil

	case textInfoFieldKnown(word):
		field := textInfoFields[word]
		grp.SetDestination(destination.NewTextSetter(word, func(s string) { d.Info.SetString(field, s) }))
		return nil

	case dateInfoFieldKnown(word):
		field := dateInfoFields[word]
		grp.SetDestination(destination.NewTimeSetter(word, grp.Props(), func(t time.Time) { d.Info.SetDate(field, t) }))
		return nil

	case ignoreWords[word]:
		return nil

	default:
		if hasParam {
			grp.Props().Set(word, group.VInt(param))
		} else {
			grp.Props().Set(word, group.VBool())
		}
		return nil
	}
}

func dateInfoFieldKnown(word string) bool {
	_, ok := dateInfoFields[word]
	return ok
}

func textInfoFieldKnown(word string) bool {
	_, ok := textInfoFields[word]
	return ok
}

func isAlignSuffix(s string) bool {
	switch s {
	case "l", "c", "r", "j":
		return true
	default:
		return false
	}
}

func isDocCharsetKeyword(word string) bool {
	_, ok := charset.FromKeyword(word)
	return ok
}

func (d *Dispatcher) ensureNumbering(grp *group.Group) {
	if d.numbering == nil {
		d.numbering = numbering.New()
		grp.SetDestination(destination.NewNumberingDest(d.numbering, d.Output))
	}
}

// IsNamedInstruction reports whether word is one of the table-1 named
// instructions, without performing the dispatch. Exposed so the driver's
// \*\dest handling (spec.md §4.9) can decide whether an optional
// destination's word should dispatch normally or fall back to NullDevice.
func IsNamedInstruction(word string) bool {
	switch word {
	case "rtf", "ansicpg", "deff", "fonttbl", "colortbl", "par", "page",
		"ql", "ulnone", "nosupersub", "nowidctlpar", "pard", "plain",
		"pntext", "info", "pn", "pnlvl", "pnlvlbody", "pnlvlblt", "pnf",
		"pnstart", "pnindent", "pntxtb", "pntxta", "field", "fldinst",
		"fldrslt", "result":
		return true
	default:
		return false
	}
}

func (d *Dispatcher) dispatchNamed(word string, hasParam bool, param int, grp *group.Group) error {
	switch word {
	case "rtf":
		grp.SetDestination(destination.NewOutputDest(d.Output, d.Fonts, d.Colors, d.Header))
		d.Header.SetVersion(param)
		return nil
	case "ansicpg":
		d.Header.SetCodepage(param)
		return nil
	case "deff":
		d.Header.SetDefaultFont(param)
		return nil
	case "fonttbl":
		grp.SetDestination(destination.NewFontTableDest(d.Fonts))
		return nil
	case "colortbl":
		grp.SetDestination(destination.NewColorTableDest(d.Colors))
		return nil
	case "par":
		return grp.Par()
	case "page":
		return grp.PageBreak()
	case "ql":
		grp.Props().Delete("q")
		return nil
	case "ulnone":
		grp.Props().Delete("ul")
		return nil
	case "nosupersub":
		grp.Props().Delete("super")
		grp.Props().Delete("sub")
		return nil
	case "nowidctlpar":
		grp.Props().Delete("widctlpar")
		return nil
	case "pard":
		grp.Props().Reset(parfmtKeys)
		if d.numbering != nil {
			if err := d.Output.NumberingOff(d.numbering); err != nil {
				return err
			}
			d.numbering = nil
		}
		return nil
	case "plain":
		grp.Props().Reset(chrfmtKeys)
		grp.Props().Set("f", group.VInt(d.Header.DefaultFont))
		return nil
	case "pntext":
		if d.PlainTextCapture {
			grp.SetDestination(destination.NewPlainText(d.Output))
		} else {
			grp.SetDestination(destination.NullDevice{})
		}
		return nil
	case "info":
		return nil
	case "pn":
		d.numbering = numbering.New()
		grp.SetDestination(destination.NewNumberingDest(d.numbering, d.Output))
		return nil
	case "pnlvl":
		d.ensureNumbering(grp)
		d.numbering.Level = param
		return nil
	case "pnlvlbody":
		d.ensureNumbering(grp)
		d.numbering.Level = numbering.LevelBody
		return nil
	case "pnlvlblt":
		d.ensureNumbering(grp)
		d.numbering.Level = numbering.LevelBullet
		return nil
	case "pnf":
		d.ensureNumbering(grp)
		d.numbering.FontIndex = param
		return nil
	case "pnstart":
		d.ensureNumbering(grp)
		d.numbering.Start = param
		return nil
	case "pnindent":
		d.ensureNumbering(grp)
		d.numbering.Indent = param
		return nil
	case "pntxtb":
		d.ensureNumbering(grp)
		n := d.numbering
		grp.SetDestination(destination.NewTextSetter("pntxtb", func(s string) { n.Before = s }))
		return nil
	case "pntxta":
		d.ensureNumbering(grp)
		n := d.numbering
		grp.SetDestination(destination.NewTextSetter("pntxta", func(s string) { n.After = s }))
		return nil
	case "field":
		d.field = destination.NewField(d.Output)
		grp.SetDestination(d.field)
		return nil
	case "fldinst":
		if d.field == nil {
			return fmt.Errorf("fldinst outside of a field destination")
		}
		grp.SetDestination(d.field.NewInstr())
		return nil
	case "fldrslt":
		if d.field == nil {
			return fmt.Errorf("fldrslt outside of a field destination")
		}
		grp.SetDestination(d.field.NewResult())
		return nil
	case "result":
		grp.SetDestination(destination.NullDevice{})
		return nil
	default:
		return fmt.Errorf("control: unhandled named instruction %q", word)
	}
}
