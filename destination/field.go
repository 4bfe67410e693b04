package destination

import (
	"fmt"
	"strings"
)

// Field is the destination a \field group installs. It owns no text of its
// own — \fldinst and \fldrslt install TextSetter children (via NewInstr/
// NewResult) that write into InstructionText/ResultText directly — and on
// close it interprets the instruction and emits the matching Output event.
// Per spec.md §3 and §7, only HYPERLINK instructions are understood; any
// other instruction is a fatal field error rather than a silent no-op,
// matching the reference parser's stance.
type Field struct {
	Unsupported
	InstructionText string
	ResultText      string
	out             Output
}

// NewField builds a Field that notifies out on close.
func NewField(out Output) *Field {
	return &Field{Unsupported: Unsupported{Name: "field"}, out: out}
}

// NewInstr returns a TextSetter that writes into f's InstructionText.
func (f *Field) NewInstr() *TextSetter {
	return NewTextSetter("fldinst", func(s string) { f.InstructionText = s })
}

// NewResult returns a TextSetter that writes into f's ResultText.
func (f *Field) NewResult() *TextSetter {
	return NewTextSetter("fldrslt", func(s string) { f.ResultText = s })
}

func (f *Field) Close() error {
	instr := strings.TrimSpace(f.InstructionText)
	switch {
	case strings.HasPrefix(instr, "HYPERLINK"):
		url := hyperlinkTarget(instr)
		return f.out.Hyperlink(f.ResultText, url)
	default:
		return fmt.Errorf("field: unsupported instruction %q", instr)
	}
}

// hyperlinkTarget extracts the quoted URL out of a HYPERLINK field
// instruction, e.g. `HYPERLINK "https://example.com"`. Switches such as
// \l or \m that may follow the URL are ignored, matching the spec's scope
// (§1 excludes full field-instruction-grammar parsing).
func hyperlinkTarget(instr string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(instr, "HYPERLINK"))
	if !strings.HasPrefix(rest, `"`) {
		return rest
	}
	rest = rest[1:]
	if end := strings.IndexByte(rest, '"'); end >= 0 {
		return rest[:end]
	}
	return rest
}
