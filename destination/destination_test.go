package destination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TalentFormula/rtfdoc/destination"
	"github.com/TalentFormula/rtfdoc/doctables"
	"github.com/TalentFormula/rtfdoc/format"
	"github.com/TalentFormula/rtfdoc/group"
	"github.com/TalentFormula/rtfdoc/numbering"
)

func TestRootAcceptsOnlyNUL(t *testing.T) {
	root := destination.NewRoot()
	require.NoError(t, root.Write("\x00", group.PropertyMap{}))
	require.Error(t, root.Write("x", group.PropertyMap{}))
	require.Error(t, root.Par(group.PropertyMap{}))
}

func TestNullDeviceDiscardsEverything(t *testing.T) {
	nd := destination.NullDevice{}
	require.NoError(t, nd.Write("anything", group.PropertyMap{}))
	require.NoError(t, nd.Par(group.PropertyMap{}))
	require.NoError(t, nd.PageBreak(group.PropertyMap{}))
	require.NoError(t, nd.Close())
}

func TestFontTableDestRegistersOnTerminator(t *testing.T) {
	fonts := doctables.NewFonts()
	ft := destination.NewFontTableDest(fonts)
	props := group.PropertyMap{"f": group.VInt(3), "family": group.VString("swiss"), "fcharset": group.VInt(2)}

	require.NoError(t, ft.Write("Arial", props))
	require.NoError(t, ft.Write(";", props))

	font, ok := fonts.Get(3)
	require.True(t, ok)
	require.Equal(t, "Arial", font.Name)
	require.Equal(t, "swiss", font.Family)
	require.True(t, font.HasFchar)
	require.Equal(t, 2, font.Fcharset)
}

func TestFontTableDestMissingIndexFails(t *testing.T) {
	fonts := doctables.NewFonts()
	ft := destination.NewFontTableDest(fonts)
	require.Error(t, ft.Write(";", group.PropertyMap{}))
}

func TestColorTableDestClearsTripleAfterEachTerminator(t *testing.T) {
	colors := doctables.NewColors()
	ct := destination.NewColorTableDest(colors)
	props := group.PropertyMap{"red": group.VInt(10), "green": group.VInt(20), "blue": group.VInt(30)}

	require.NoError(t, ct.Write(";", props))
	require.False(t, props.Has("red"))

	require.NoError(t, ct.Write(";", props))

	require.Equal(t, 2, colors.Len())
	c0, _ := colors.Get(0)
	require.Equal(t, doctables.Color{Red: 10, Green: 20, Blue: 30}, c0)
	c1, _ := colors.Get(1)
	require.Equal(t, doctables.Color{}, c1)
}

func TestTextSetterAssignsOnClose(t *testing.T) {
	var got string
	ts := destination.NewTextSetter("title", func(s string) { got = s })
	require.NoError(t, ts.Write("Hello, ", group.PropertyMap{}))
	require.NoError(t, ts.Write("World", group.PropertyMap{}))
	require.NoError(t, ts.Close())
	require.Equal(t, "Hello, World", got)
}

func TestTimeSetterBuildsDateFromProps(t *testing.T) {
	props := group.PropertyMap{
		"yr": group.VInt(2024), "mo": group.VInt(3), "dy": group.VInt(14),
		"hr": group.VInt(9), "min": group.VInt(30),
	}
	var got time.Time
	tsetter := destination.NewTimeSetter("creatim", props, func(t time.Time) { got = t })
	require.NoError(t, tsetter.Close())
	require.Equal(t, time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC), got)
}

func TestTimeSetterRequiresYrMoDy(t *testing.T) {
	props := group.PropertyMap{"yr": group.VInt(2024)}
	tsetter := destination.NewTimeSetter("creatim", props, func(time.Time) {})
	require.Error(t, tsetter.Close())
}

// recordingOutput implements destination.Output, recording just enough to
// assert the behaviors these tests care about.
type recordingOutput struct {
	hyperlinks [][2]string
	numOn      int
	numOff     int
}

func (o *recordingOutput) Write(text string, view format.View) error { return nil }
func (o *recordingOutput) Par(view format.View) error                { return nil }
func (o *recordingOutput) PageBreak(view format.View) error           { return nil }
func (o *recordingOutput) PlainText(text string) error                { return nil }
func (o *recordingOutput) Hyperlink(text, url string) error {
	o.hyperlinks = append(o.hyperlinks, [2]string{text, url})
	return nil
}
func (o *recordingOutput) NumberingOn(n *numbering.Numbering) error  { o.numOn++; return nil }
func (o *recordingOutput) NumberingOff(n *numbering.Numbering) error { o.numOff++; return nil }
func (o *recordingOutput) EndDoc() error                            { return nil }

func TestFieldEmitsHyperlinkOnClose(t *testing.T) {
	out := &recordingOutput{}
	field := destination.NewField(out)
	instr := field.NewInstr()
	require.NoError(t, instr.Write(`HYPERLINK "https://example.com/path"`, group.PropertyMap{}))
	require.NoError(t, instr.Close())

	result := field.NewResult()
	require.NoError(t, result.Write("link text", group.PropertyMap{}))
	require.NoError(t, result.Close())

	require.NoError(t, field.Close())
	require.Equal(t, [][2]string{{"link text", "https://example.com/path"}}, out.hyperlinks)
}

func TestFieldRejectsUnknownInstruction(t *testing.T) {
	out := &recordingOutput{}
	field := destination.NewField(out)
	instr := field.NewInstr()
	require.NoError(t, instr.Write("PAGEREF _Toc1", group.PropertyMap{}))
	require.NoError(t, instr.Close())
	require.Error(t, field.Close())
}

func TestNumberingDestNotifiesOutputOnClose(t *testing.T) {
	out := &recordingOutput{}
	n := numbering.New()
	nd := destination.NewNumberingDest(n, out)
	require.NoError(t, nd.Close())
	require.Equal(t, 1, out.numOn)
}
