// Package charset resolves RTF charset keywords and \fcharsetN values to
// concrete text encodings, and decodes the single raw byte carried by a
// \'hh hex escape under the resolved encoding. Single-byte code pages are
// served by golang.org/x/text/encoding/charmap; the handful of double-byte
// encodings the specification names (Shift-JIS, EUC-KR/Johab, GB2312, Big5)
// are served by their respective golang.org/x/text/encoding sub-packages,
// the same module the teacher's sibling repo in the retrieval pack
// (golang.org/x/image) already pulls in for text-shaping support.
package charset

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// Name identifies one of the encodings this resolver understands.
type Name string

// Recognized encoding names. These are the RTF-side names, not Go/IANA
// names, so callers read the same vocabulary the specification uses.
const (
	ANSI      Name = "ansi"
	CP437     Name = "cp437"
	CP850     Name = "cp850"
	Macintosh Name = "macintosh"
	CP932     Name = "cp932"
	CP949     Name = "cp949"
	Johab     Name = "johab"
	GB2312    Name = "gb2312"
	Big5      Name = "big5"
	CP1250    Name = "cp1250"
	CP1251    Name = "cp1251"
	CP1253    Name = "cp1253"
	CP1254    Name = "cp1254"
	CP1255    Name = "cp1255"
	CP1256    Name = "cp1256"
	CP1257    Name = "cp1257"
	CP1258    Name = "cp1258"
	CP874     Name = "cp874"
	OEM       Name = "oem"
)

// fcharsetTable maps \fcharsetN integers to encoding names. Ported directly
// from original_source/rtfcharset.py's CHARSETS table, which is the
// authoritative source for this mapping (spec.md §4.3 reproduces the same
// values).
var fcharsetTable = map[int]Name{
	0:   ANSI,
	2:   ANSI, // "Symbol": treated as ansi for byte decoding
	77:  Macintosh,
	128: CP932,
	129: CP949,
	130: Johab,
	134: GB2312,
	136: Big5,
	161: CP1253,
	162: CP1254,
	163: CP1258,
	177: CP1255,
	178: CP1256,
	186: CP1257,
	204: CP1251,
	222: CP874,
	238: CP1250,
	254: CP437,
	255: OEM,
}

// FromFcharset resolves an \fcharsetN value to an encoding name. N of 1 or 3
// means "use the document default"; any other value absent from the table
// is a hard failure, per spec.md §4.3 and §7 (KindUnknownCharset).
func FromFcharset(n int, def Name) (Name, error) {
	if n == 1 || n == 3 {
		return def, nil
	}
	name, ok := fcharsetTable[n]
	if !ok {
		return "", fmt.Errorf("charset: unknown \\fcharset%d", n)
	}
	return name, nil
}

// FromKeyword maps the four RTF document-charset keywords (\ansi, \pc,
// \pca, \mac) to encoding names.
func FromKeyword(word string) (Name, bool) {
	switch word {
	case "ansi":
		return ANSI, true
	case "pc":
		return CP437, true
	case "pca":
		return CP850, true
	case "mac":
		return Macintosh, true
	default:
		return "", false
	}
}

// FromCodepage maps an \ansicpgN value to an encoding name. Codepages this
// resolver does not special-case fall back to ansi (Windows-1252), matching
// the tolerant-parsing posture the teacher applies to out-of-range document
// fields rather than aborting the whole parse over a cosmetic codepage.
func FromCodepage(cp int) Name {
	switch cp {
	case 437:
		return CP437
	case 850:
		return CP850
	case 874:
		return CP874
	case 932:
		return CP932
	case 936:
		return GB2312
	case 949:
		return CP949
	case 950:
		return Big5
	case 1250:
		return CP1250
	case 1251:
		return CP1251
	case 1253:
		return CP1253
	case 1254:
		return CP1254
	case 1255:
		return CP1255
	case 1256:
		return CP1256
	case 1257:
		return CP1257
	case 1258:
		return CP1258
	case 10000:
		return Macintosh
	default:
		return ANSI
	}
}

var charmaps = map[Name]*charmap.Charmap{
	ANSI:      charmap.Windows1252,
	CP437:     charmap.CodePage437,
	CP850:     charmap.CodePage850,
	Macintosh: charmap.Macintosh,
	CP1250:    charmap.Windows1250,
	CP1251:    charmap.Windows1251,
	CP1253:    charmap.Windows1253,
	CP1254:    charmap.Windows1254,
	CP1255:    charmap.Windows1255,
	CP1256:    charmap.Windows1256,
	CP1257:    charmap.Windows1257,
	CP1258:    charmap.Windows1258,
	CP874:     charmap.Windows874,
	OEM:       charmap.CodePage437,
}

// dbcs holds the double-byte encodings this resolver knows how to decode.
// RTF emits one \'hh escape per raw byte, so a double-byte character
// arrives as two consecutive hex escapes; Decoder buffers the lead byte
// until the trail byte completes it. x/text has no dedicated Johab codec,
// so Johab is approximated with EUC-KR, which covers the overlapping
// Hangul range adequately for plain-text extraction.
var dbcs = map[Name]encoding.Encoding{
	CP932:  japanese.ShiftJIS,
	CP949:  korean.EUCKR,
	Johab:  korean.EUCKR,
	GB2312: simplifiedchinese.GBK,
	Big5:   traditionalchinese.Big5,
}

// Decoder decodes the raw bytes carried by \'hh escapes under one resolved
// encoding. It is stateful only for double-byte encodings, where a lead
// byte is held across calls until its trail byte arrives.
type Decoder struct {
	name    Name
	cm      *charmap.Charmap
	dec     *encoding.Decoder
	pending []byte
}

// NewDecoder resolves name to a Decoder.
func NewDecoder(name Name) (*Decoder, error) {
	if cm, ok := charmaps[name]; ok {
		return &Decoder{name: name, cm: cm}, nil
	}
	if enc, ok := dbcs[name]; ok {
		return &Decoder{name: name, dec: enc.NewDecoder()}, nil
	}
	return nil, fmt.Errorf("charset: unsupported encoding %q", name)
}

// DecodeByte feeds one raw byte from a \'hh escape into the decoder. ok is
// false, with no error, when b was consumed as the lead byte of a
// double-byte sequence and the trail byte is still needed.
func (d *Decoder) DecodeByte(b byte) (r rune, ok bool, err error) {
	if d.cm != nil {
		return d.cm.DecodeByte(b), true, nil
	}

	d.pending = append(d.pending, b)
	out := make([]byte, 8)
	nDst, nSrc, terr := d.dec.Transform(out, d.pending, false)
	if terr == transform.ErrShortSrc {
		return 0, false, nil
	}
	if terr != nil {
		d.pending = nil
		return 0, false, fmt.Errorf("charset: invalid byte sequence in %s: %w", d.name, terr)
	}
	d.pending = d.pending[nSrc:]
	if nDst == 0 {
		return 0, false, nil
	}
	runes := []rune(string(out[:nDst]))
	return runes[0], true, nil
}
