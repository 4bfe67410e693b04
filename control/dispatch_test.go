package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TalentFormula/rtfdoc/charset"
	"github.com/TalentFormula/rtfdoc/control"
	"github.com/TalentFormula/rtfdoc/docheader"
	"github.com/TalentFormula/rtfdoc/docinfo"
	"github.com/TalentFormula/rtfdoc/doctables"
	"github.com/TalentFormula/rtfdoc/format"
	"github.com/TalentFormula/rtfdoc/group"
	"github.com/TalentFormula/rtfdoc/numbering"
)

type noopOutput struct{}

func (noopOutput) Write(string, format.View) error          { return nil }
func (noopOutput) Par(format.View) error                     { return nil }
func (noopOutput) PageBreak(format.View) error                { return nil }
func (noopOutput) PlainText(string) error                    { return nil }
func (noopOutput) Hyperlink(string, string) error             { return nil }
func (noopOutput) NumberingOn(*numbering.Numbering) error     { return nil }
func (noopOutput) NumberingOff(*numbering.Numbering) error    { return nil }
func (noopOutput) EndDoc() error                              { return nil }

// numberingRecorder is a noopOutput that remembers the numbering context
// most recently ended through NumberingOff.
type numberingRecorder struct {
	noopOutput
	ended *numbering.Numbering
}

func (r *numberingRecorder) NumberingOff(n *numbering.Numbering) error {
	r.ended = n
	return nil
}

func newDispatcher() (*control.Dispatcher, *group.Group) {
	header := docheader.New()
	d := control.New(header, doctables.NewFonts(), doctables.NewColors(), &docinfo.Info{}, noopOutput{})
	return d, group.NewRoot(destinationRoot{})
}

// destinationRoot is a trivial group.Destination good enough to anchor a
// root group for dispatch tests that never exercise write/par/page_break.
type destinationRoot struct{}

func (destinationRoot) Write(string, group.PropertyMap) error { return nil }
func (destinationRoot) Par(group.PropertyMap) error             { return nil }
func (destinationRoot) PageBreak(group.PropertyMap) error       { return nil }
func (destinationRoot) Close() error                            { return nil }

func TestToggleSetClearsOnZeroParam(t *testing.T) {
	d, grp := newDispatcher()
	require.NoError(t, d.Handle("b", false, 0, grp))
	require.True(t, grp.Props().Bool("b"))

	require.NoError(t, d.Handle("b", true, 0, grp))
	require.False(t, grp.Props().Has("b"))
}

func TestAlignmentPrefix(t *testing.T) {
	d, grp := newDispatcher()
	require.NoError(t, d.Handle("qr", false, 0, grp))
	require.Equal(t, "r", grp.Props().String("q", "l"))
}

func TestQlNamedInstructionClearsAlignment(t *testing.T) {
	d, grp := newDispatcher()
	grp.Props().Set("q", group.VString("c"))
	require.NoError(t, d.Handle("ql", false, 0, grp))
	require.False(t, grp.Props().Has("q"))
}

func TestUnderlinePrefixStoresSuffix(t *testing.T) {
	d, grp := newDispatcher()
	require.NoError(t, d.Handle("ulth", false, 0, grp))
	require.Equal(t, "th", grp.Props().String("ul", ""))
}

func TestPardClearsParagraphKeysAndNumbering(t *testing.T) {
	d, grp := newDispatcher()
	rec := &numberingRecorder{}
	d.Output = rec
	grp.Props().Set("li", group.VInt(360))
	require.NoError(t, d.Handle("pn", false, 0, grp))
	require.NoError(t, d.Handle("pard", false, 0, grp))
	require.False(t, grp.Props().Has("li"))
	require.NotNil(t, rec.ended)
}

func TestPlainResetsToDefaultFont(t *testing.T) {
	d, grp := newDispatcher()
	d.Header.SetDefaultFont(2)
	grp.Props().Set("f", group.VInt(9))
	grp.Props().Set("b", group.VBool())
	require.NoError(t, d.Handle("plain", false, 0, grp))
	require.Equal(t, 2, grp.Props().Int("f", -1))
	require.False(t, grp.Props().Has("b"))
}

func TestDocumentCharsetKeyword(t *testing.T) {
	d, grp := newDispatcher()
	require.NoError(t, d.Handle("pca", false, 0, grp))
	require.Equal(t, charset.CP850, d.Header.DocumentCharset())
}

func TestFontFamilyKeyword(t *testing.T) {
	d, grp := newDispatcher()
	require.NoError(t, d.Handle("fswiss", false, 0, grp))
	require.Equal(t, "swiss", grp.Props().String("family", ""))
}

func TestIgnoreWordsHaveNoEffect(t *testing.T) {
	d, grp := newDispatcher()
	require.NoError(t, d.Handle("viewkind", true, 4, grp))
	require.False(t, grp.Props().Has("viewkind"))
}

func TestDefaultRuleStoresUnknownWord(t *testing.T) {
	d, grp := newDispatcher()
	require.NoError(t, d.Handle("widctlpar", true, 1, grp))
	require.Equal(t, 1, grp.Props().Int("widctlpar", -1))
}

func TestNumberingAuxiliaryBag(t *testing.T) {
	d, grp := newDispatcher()
	rec := &numberingRecorder{}
	d.Output = rec
	require.NoError(t, d.Handle("pn", false, 0, grp))
	require.NoError(t, d.Handle("pnqc", true, 1, grp))
	require.NoError(t, d.Handle("pnstart", true, 5, grp))
	require.NoError(t, d.Handle("pard", false, 0, grp))
	require.NotNil(t, rec.ended)
	require.Equal(t, 1, rec.ended.Aux["pnqc"])
	require.Equal(t, 5, rec.ended.Start)
}

func TestIsNamedInstruction(t *testing.T) {
	require.True(t, control.IsNamedInstruction("fonttbl"))
	require.False(t, control.IsNamedInstruction("stylesheet"))
}
