// Package parser implements the driver loop described in spec.md §4.8-4.9:
// the byte-stream state machine that threads literal text runs, group
// pushes/pops, and control-word tokens through the lexer, group stack, and
// control dispatcher built by the rest of this module. This is the
// counterpart to the teacher's pkg/msdoc package — the top-level entry
// point a caller actually imports — adapted from "open a compound file and
// hand back its streams" to "stream an RTF byte source and emit semantic
// events as they're read."
package parser

import (
	"errors"
	"io"
	"strings"

	"github.com/TalentFormula/rtfdoc/charset"
	"github.com/TalentFormula/rtfdoc/control"
	"github.com/TalentFormula/rtfdoc/destination"
	"github.com/TalentFormula/rtfdoc/docheader"
	"github.com/TalentFormula/rtfdoc/docinfo"
	"github.com/TalentFormula/rtfdoc/doctables"
	"github.com/TalentFormula/rtfdoc/group"
	"github.com/TalentFormula/rtfdoc/lexer"
	"github.com/TalentFormula/rtfdoc/reader"
	"github.com/TalentFormula/rtfdoc/rtferrors"
)

// Config holds the caller-supplied options spec.md §6 names: the Output
// sink every semantic event is delivered to, and whether \pntext content
// should reach Output as plain text or be discarded.
type Config struct {
	Output    destination.Output
	PlainText bool
}

// Parser drives one parse of one RTF byte stream. A Parser MUST NOT be
// reused across documents or shared across goroutines (spec.md §5).
type Parser struct {
	lex      *lexer.Lexer
	dispatch *control.Dispatcher
	grp      *group.Group

	header *docheader.Header
	fonts  *doctables.Fonts
	colors *doctables.Colors
	info   *docinfo.Info

	decoders map[charset.Name]*charset.Decoder
}

// New builds a Parser reading from r, delivering events per cfg.
func New(r io.Reader, cfg Config) *Parser {
	header := docheader.New()
	fonts := doctables.NewFonts()
	colors := doctables.NewColors()
	info := &docinfo.Info{}

	disp := control.New(header, fonts, colors, info, cfg.Output)
	disp.PlainTextCapture = cfg.PlainText

	return &Parser{
		lex:      lexer.New(reader.New(r)),
		dispatch: disp,
		grp:      group.NewRoot(destination.NewRoot()),
		header:   header,
		fonts:    fonts,
		colors:   colors,
		info:     info,
		decoders: make(map[charset.Name]*charset.Decoder),
	}
}

// Header returns the document-lifetime header state accumulated so far.
func (p *Parser) Header() *docheader.Header { return p.header }

// Fonts returns the shared font table accumulated so far.
func (p *Parser) Fonts() *doctables.Fonts { return p.fonts }

// Colors returns the shared color table accumulated so far.
func (p *Parser) Colors() *doctables.Colors { return p.colors }

// Info returns the document metadata record accumulated so far.
func (p *Parser) Info() *docinfo.Info { return p.info }

// Run drives the parser to completion, delivering events to the
// configured Output until end of stream or a fatal error.
func (p *Parser) Run() error {
	for {
		if err := p.literalRun(); err != nil {
			return err
		}
		b, err := p.lex.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if p.grp.Parent() != nil {
					return rtferrors.New(rtferrors.KindStructural, p.lex.Offset(), "unexpected end of stream inside an open group")
				}
				return p.dispatch.Output.EndDoc()
			}
			return rtferrors.Wrap(rtferrors.KindLex, p.lex.Offset(), err, "read failed")
		}
		switch b {
		case '\\':
			if err := p.readControl(); err != nil {
				return err
			}
		case '{':
			p.grp = p.grp.Push()
		case '}':
			parent, err := p.grp.Pop()
			if err != nil {
				return rtferrors.Wrap(rtferrors.KindStructural, p.lex.Offset(), err, "unmatched }")
			}
			p.grp = parent
		default:
			return rtferrors.New(rtferrors.KindStructural, p.lex.Offset(), "unexpected byte %q at top level", b)
		}
	}
}

// literalRun implements spec.md §4.8 step 1: a run of bytes that are
// neither group braces nor a backslash is text, with \r and \n discarded
// and the rest interpreted as ASCII. A stray byte >= 0x80 is not the
// reference's normal path (real RTF represents non-ASCII text with \'hh
// escapes instead), but the reference's own text.decode() does not abort
// the whole parse over one, so such a byte is passed through as the Latin-1
// code point of the same value rather than failing the parse.
func (p *Parser) literalRun() error {
	raw := p.lex.ReadWhile(func(b byte) bool { return b != '{' && b != '}' && b != '\\' })
	if len(raw) == 0 {
		return nil
	}
	var sb strings.Builder
	for _, b := range raw {
		switch b {
		case '\r', '\n':
			continue
		}
		if b >= 0x80 {
			sb.WriteRune(rune(b))
			continue
		}
		sb.WriteByte(b)
	}
	if sb.Len() == 0 {
		return nil
	}
	return p.writeText(sb.String())
}

// writeText routes text to the current destination, wrapping any
// destination failure as a fatal, offset-annotated error: a structural error
// when the text reached the root destination, a destination error otherwise.
func (p *Parser) writeText(s string) error {
	if err := p.grp.Write(s); err != nil {
		kind := rtferrors.KindDestination
		if _, isRoot := p.grp.Destination().(*destination.Root); isRoot {
			kind = rtferrors.KindStructural
		}
		return rtferrors.Wrap(kind, p.lex.Offset(), err, "write failed")
	}
	return nil
}

// readControl implements spec.md §4.9.
func (p *Parser) readControl() error {
	word := p.lex.ReadWord()
	if word != "" {
		if lit, ok := control.Escapes[word]; ok {
			p.lex.EndControl()
			return p.writeText(lit)
		}
		param, hasParam := p.lex.ReadParam()
		if word == "bin" {
			// \binN's payload is counted, not delimited (spec.md §4.6): the
			// parameter's optional terminating space is consumed, then
			// exactly N raw bytes follow.
			if !hasParam || param < 0 {
				return rtferrors.New(rtferrors.KindLex, p.lex.Offset(), "\\bin requires a non-negative byte count")
			}
			p.lex.EndControl()
			return p.skipBinary(param)
		}
		p.lex.EndControl()
		if word == "u" {
			return p.handleUnicode(param)
		}
		if err := p.dispatch.Handle(word, hasParam, param, p.grp); err != nil {
			return rtferrors.Wrap(rtferrors.KindDestination, p.lex.Offset(), err, "control word \\%s failed", word)
		}
		return nil
	}

	b, err := p.lex.ReadByte()
	if err != nil {
		return rtferrors.Wrap(rtferrors.KindLex, p.lex.Offset(), err, "truncated control sequence")
	}
	switch b {
	case '\'':
		return p.readHexEscape()
	case '\\', '{', '}':
		return p.writeText(string(b))
	case '~':
		return p.writeText(" ")
	case '-':
		return p.writeText("­")
	case '_':
		return p.writeText("‑")
	case '\r', '\n':
		if err := p.grp.Par(); err != nil {
			return rtferrors.Wrap(rtferrors.KindDestination, p.lex.Offset(), err, "paragraph break failed")
		}
		return nil
	case '*':
		return p.readOptionalDestination()
	default:
		return rtferrors.New(rtferrors.KindLex, p.lex.Offset(), "unexpected byte %q after backslash", b)
	}
}

// skipBinary implements spec.md §4.6's \binN: read and discard exactly n
// raw bytes following the parameter's terminator, tolerating the payload
// rather than failing the parse the way literalRun would if those bytes
// fell through to it as ordinary text.
func (p *Parser) skipBinary(n int) error {
	if err := p.lex.SkipBytes(n); err != nil {
		return rtferrors.Wrap(rtferrors.KindLex, p.lex.Offset(), err, "\\bin payload truncated")
	}
	return nil
}

// readOptionalDestination implements the `\*` branch of spec.md §4.9.
func (p *Parser) readOptionalDestination() error {
	for {
		b, err := p.lex.ReadByte()
		if err != nil {
			return rtferrors.Wrap(rtferrors.KindStructural, p.lex.Offset(), err, "end of stream after \\*")
		}
		if b == '\r' || b == '\n' {
			continue
		}
		if b != '\\' {
			return rtferrors.New(rtferrors.KindLex, p.lex.Offset(), "expected \\ after \\*, got %q", b)
		}
		break
	}
	word := p.lex.ReadWord()
	if word == "" {
		return rtferrors.New(rtferrors.KindLex, p.lex.Offset(), "expected a control word after \\*\\")
	}
	param, hasParam := p.lex.ReadParam()
	p.lex.EndControl()
	if control.IsNamedInstruction(word) {
		if err := p.dispatch.Handle(word, hasParam, param, p.grp); err != nil {
			return rtferrors.Wrap(rtferrors.KindDestination, p.lex.Offset(), err, "control word \\%s failed", word)
		}
		return nil
	}
	p.grp.SetDestination(destination.NullDevice{})
	return nil
}

// handleUnicode implements spec.md §4.7's \uN handling, including the high
// surrogate → required low surrogate \u pairing and the uc-controlled
// replacement-character skip that follows each \u.
func (p *Parser) handleUnicode(n int) error {
	u := n
	if n < 0 {
		u += 0x10000
	}
	uc := p.grp.Props().Int("uc", 1)

	if u >= 0xD800 && u <= 0xDBFF {
		if err := p.lex.SkipChars(uc); err != nil {
			return err
		}
		if err := p.lex.Consume([]byte{'\\', 'u'}); err != nil {
			return rtferrors.Wrap(rtferrors.KindSurrogate, p.lex.Offset(), err, "expected low surrogate \\u after high surrogate \\u%d", n)
		}
		m, ok := p.lex.ReadParam()
		if !ok {
			return rtferrors.New(rtferrors.KindSurrogate, p.lex.Offset(), "low surrogate \\u is missing its parameter")
		}
		p.lex.EndControl()
		lo := m
		if m < 0 {
			lo += 0x10000
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return rtferrors.New(rtferrors.KindSurrogate, p.lex.Offset(), "low surrogate %d out of range", lo)
		}
		r := rune(0x10000 + (u-0xD800)<<10 + (lo - 0xDC00))
		if err := p.writeText(string(r)); err != nil {
			return err
		}
	} else {
		if err := p.writeText(string(rune(u))); err != nil {
			return err
		}
	}
	return p.lex.SkipChars(uc)
}

// readHexEscape implements spec.md §4.7's \'hh handling: the raw byte is
// decoded under the charset currently in effect (§4.3), which may be the
// lead byte of a double-byte sequence still waiting on its trail byte.
func (p *Parser) readHexEscape() error {
	raw, err := p.lex.ReadHexByte()
	if err != nil {
		return err
	}
	name, err := p.dispatch.CurrentCharset(p.grp.Props())
	if err != nil {
		return rtferrors.Wrap(rtferrors.KindUnknownCharset, p.lex.Offset(), err, "cannot resolve current charset")
	}
	dec, err := p.decoderFor(name)
	if err != nil {
		return rtferrors.Wrap(rtferrors.KindEncoding, p.lex.Offset(), err, "cannot build decoder")
	}
	r, ok, err := dec.DecodeByte(raw)
	if err != nil {
		return rtferrors.Wrap(rtferrors.KindEncoding, p.lex.Offset(), err, "decode failed")
	}
	if !ok {
		return nil
	}
	return p.writeText(string(r))
}

func (p *Parser) decoderFor(name charset.Name) (*charset.Decoder, error) {
	if d, ok := p.decoders[name]; ok {
		return d, nil
	}
	d, err := charset.NewDecoder(name)
	if err != nil {
		return nil, err
	}
	p.decoders[name] = d
	return d, nil
}
