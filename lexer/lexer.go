// Package lexer implements the lexical primitives the RTF driver composes
// into control tokens: reading a control word and its optional signed
// parameter, consuming the single terminating space, reading a \'hh hex
// escape, and skipping the N replacement units that follow a \u whose
// replacement character count is greater than zero.
package lexer

import (
	"errors"
	"io"

	"github.com/TalentFormula/rtfdoc/reader"
	"github.com/TalentFormula/rtfdoc/rtferrors"
)

// Lexer reads control-word-level tokens off a reader.Reader. It holds no
// parser state of its own (no destinations, no property maps); it is purely
// a byte-to-token translator, the same separation of concerns the teacher
// keeps between its ole2.Reader and the structures that interpret its
// bytes.
type Lexer struct {
	r *reader.Reader
}

// New creates a Lexer over r.
func New(r *reader.Reader) *Lexer {
	return &Lexer{r: r}
}

// Offset returns the current byte offset, for error reporting.
func (l *Lexer) Offset() int64 { return l.r.Offset() }

// ReadByte exposes the underlying reader's ReadByte for the driver's literal
// text runs.
func (l *Lexer) ReadByte() (byte, error) { return l.r.ReadByte() }

// Unread exposes the underlying reader's Unread.
func (l *Lexer) Unread() error { return l.r.Unread() }

// ReadWhile exposes the underlying reader's ReadWhile.
func (l *Lexer) ReadWhile(pred func(byte) bool) []byte { return l.r.ReadWhile(pred) }

// ReadWord reads a (possibly empty) run of ASCII letters, the keyword part
// of a control word.
func (l *Lexer) ReadWord() string {
	return string(l.r.ReadWhile(reader.IsLetter))
}

// ReadNumber reads an optional leading '-' followed by digits and returns
// the parsed signed integer, or def if no digit started the run. The reader
// only ever needs one byte of pushback here: a leading '-' is committed
// before the following digit run is read, so a bare '-' with nothing after
// it is swallowed rather than restored (the same behavior the reference
// Python prototype's read_until-based parser has, and not reachable from any
// valid control word, which never places a lone '-' before a space or
// letter).
func (l *Lexer) ReadNumber(def int) int {
	if n, ok := l.ReadParam(); ok {
		return n
	}
	return def
}

// ReadParam is ReadNumber without a default: ok is false when no digit
// started the run, so callers can distinguish "no parameter" from
// "parameter 0" (spec.md §4.6 rule 2 needs exactly this distinction for
// the toggle-formatting set).
func (l *Lexer) ReadParam() (value int, ok bool) {
	b, err := l.r.ReadByte()
	if err != nil {
		return 0, false
	}
	neg := b == '-'
	if !neg {
		_ = l.r.Unread()
	}
	digits := l.r.ReadWhile(reader.IsDigit)
	if len(digits) == 0 {
		return 0, false
	}
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

// EndControl consumes exactly one trailing space if present; any other byte
// (including none, at EOF) is left unread. This is the only whitespace the
// lexer itself ever eats.
func (l *Lexer) EndControl() {
	b, err := l.r.ReadByte()
	if err != nil {
		return
	}
	if b != ' ' {
		_ = l.r.Unread()
	}
}

// SkipBytes discards exactly n raw bytes. Used for \binN payloads, which
// are counted rather than delimited: the driver consumes \bin's terminating
// space first, then discards the payload with this.
func (l *Lexer) SkipBytes(n int) error {
	_, err := l.r.ReadN(n)
	return err
}

// ReadHexByte reads exactly two hex digits and returns the decoded byte.
func (l *Lexer) ReadHexByte() (byte, error) {
	var v byte
	for i := 0; i < 2; i++ {
		b, err := l.r.ReadByte()
		if err != nil {
			return 0, rtferrors.Wrap(rtferrors.KindLex, l.Offset(), err, "truncated hex escape")
		}
		d, ok := hexDigit(b)
		if !ok {
			return 0, rtferrors.New(rtferrors.KindLex, l.Offset(), "invalid hex digit %q", b)
		}
		v = v<<4 | d
	}
	return v, nil
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// Consume reads exactly len(expected) bytes and fails if they don't match.
func (l *Lexer) Consume(expected []byte) error {
	for _, want := range expected {
		got, err := l.r.ReadByte()
		if err != nil {
			return rtferrors.Wrap(rtferrors.KindLex, l.Offset(), err, "expected %q", expected)
		}
		if got != want {
			return rtferrors.New(rtferrors.KindLex, l.Offset(), "expected %q, got %q", expected, got)
		}
	}
	return nil
}

// SkipChars skips the next n replacement units following a \u, where a unit
// is one literal byte, one \'hh hex escape, or one full control word with
// its optional parameter and terminating space. A brace ends skipping
// immediately, unread so the driver sees it next.
func (l *Lexer) SkipChars(n int) error {
	for i := 0; i < n; i++ {
		b, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if b == '{' || b == '}' {
			_ = l.r.Unread()
			return nil
		}
		if b != '\\' {
			continue // one literal byte consumed as a unit
		}
		// Backslash: figure out what kind of unit follows.
		nb, err := l.r.ReadByte()
		if err != nil {
			return nil
		}
		switch {
		case nb == '\'':
			if _, err := l.ReadHexByte(); err != nil {
				return err
			}
		case reader.IsLetter(nb):
			_ = l.r.Unread()
			word := l.ReadWord()
			if word != "" {
				l.ReadNumber(0)
				l.EndControl()
			}
		default:
			// \~, \-, \_, \\, \{, \}, or an endline escape: the escaped
			// byte itself is the whole unit, already consumed.
		}
	}
	return nil
}
