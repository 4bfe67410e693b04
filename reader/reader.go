// Package reader provides the seekable, 1-byte-lookahead byte reader the RTF
// lexer is built on top of. It plays the same role for this parser that
// ole2.Reader plays for the teacher's compound-file reader: a single,
// low-level place where byte access and offset bookkeeping happen, so every
// other package can work in terms of bytes and predicates instead of I/O.
package reader

import (
	"bufio"
	"errors"
	"io"
)

// ErrNoUnread is returned by Unread when called twice in a row with no
// ReadByte in between. Unread does not check that any byte has been read
// yet: called before the first ReadByte, it pushes back a zero byte.
var ErrNoUnread = errors.New("reader: nothing to unread")

// Reader wraps an io.Reader with one-byte pushback and a running byte
// offset, used by every fatal error in the parser to report where in the
// stream things went wrong.
type Reader struct {
	src       *bufio.Reader
	offset    int64
	lastByte  byte
	hasUnread bool
}

// New wraps r for byte-at-a-time reading.
func New(r io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far, i.e. the offset of the
// next byte ReadByte will return.
func (r *Reader) Offset() int64 { return r.offset }

// ReadByte returns the next byte, or io.EOF when the stream is exhausted.
func (r *Reader) ReadByte() (byte, error) {
	if r.hasUnread {
		r.hasUnread = false
		r.offset++
		return r.lastByte, nil
	}
	b, err := r.src.ReadByte()
	if err != nil {
		return 0, err
	}
	r.lastByte = b
	r.offset++
	return b, nil
}

// Unread pushes the most recently read byte back onto the stream. Only a
// single byte of pushback is supported, matching the lexer's needs (e.g. the
// \u surrogate peek re-reads \u explicitly rather than needing deeper
// lookahead).
func (r *Reader) Unread() error {
	if r.hasUnread {
		return ErrNoUnread
	}
	r.hasUnread = true
	r.offset--
	return nil
}

// ReadN reads exactly n bytes, failing on short read.
func (r *Reader) ReadN(n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return buf, err
		}
		buf = append(buf, b)
	}
	return buf, nil
}

// ReadWhile accumulates bytes for which pred returns true into a new slice.
// EOF ends the loop without unreading; any other byte is pushed back so the
// caller sees it next.
func (r *Reader) ReadWhile(pred func(byte) bool) []byte {
	return r.ReadIntoWhile(nil, pred)
}

// ReadIntoWhile is ReadWhile but appending onto an existing buffer, avoiding
// an allocation when the caller is accumulating across multiple calls (e.g.
// skip-unit scanning).
func (r *Reader) ReadIntoWhile(buf []byte, pred func(byte) bool) []byte {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return buf
		}
		if !pred(b) {
			_ = r.Unread()
			return buf
		}
		buf = append(buf, b)
	}
}

// IsLetter reports whether b is an ASCII letter (A-Z, a-z).
func IsLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// IsDigit reports whether b is an ASCII digit (0-9).
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsEndline reports whether b is a carriage return or line feed.
func IsEndline(b byte) bool {
	return b == '\r' || b == '\n'
}
