// Package rtferrors defines the typed, fatal error kinds the RTF parser can
// report. Every error the parser returns can be unwrapped to a *ParseError,
// which carries the byte offset in the input stream at which the failure was
// detected, mirroring the way the teacher's MS-DOC reader wraps structural
// failures with fmt.Errorf's %w rather than inventing its own error package.
package rtferrors

import "fmt"

// Kind classifies why a parse failed, per the error-kind table in the
// specification.
type Kind int

const (
	// KindLex covers malformed hex escapes, bad bytes after a backslash,
	// and invalid numeric parameters.
	KindLex Kind = iota
	// KindStructural covers unmatched braces, EOF inside an open group,
	// and the root destination receiving non-NUL text.
	KindStructural
	// KindEncoding covers a byte sequence that cannot be decoded under the
	// resolved charset.
	KindEncoding
	// KindSurrogate covers a high surrogate not immediately followed by a
	// \u low surrogate.
	KindSurrogate
	// KindDestination covers text/par/page-break delivered to a
	// destination that does not implement that event.
	KindDestination
	// KindUnknownCharset covers an \fcharsetN value absent from the
	// resolver's table and not 1 or 3.
	KindUnknownCharset
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindStructural:
		return "structural"
	case KindEncoding:
		return "encoding"
	case KindSurrogate:
		return "surrogate"
	case KindDestination:
		return "destination"
	case KindUnknownCharset:
		return "unknown-fcharset"
	default:
		return "unknown"
	}
}

// ParseError is a fatal error produced while parsing an RTF stream. The
// parser never attempts partial recovery: once a ParseError is returned, no
// further events are delivered.
type ParseError struct {
	Kind   Kind
	Offset int64
	Msg    string
	Err    error // optional wrapped cause
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rtf: %s error at offset %d: %s: %v", e.Kind, e.Offset, e.Msg, e.Err)
	}
	return fmt.Sprintf("rtf: %s error at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// New builds a ParseError with no wrapped cause.
func New(kind Kind, offset int64, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a ParseError that wraps an underlying error.
func Wrap(kind Kind, offset int64, err error, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...), Err: err}
}
