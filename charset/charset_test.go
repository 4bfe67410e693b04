package charset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TalentFormula/rtfdoc/charset"
)

func TestFromFcharsetKnown(t *testing.T) {
	name, err := charset.FromFcharset(238, charset.ANSI)
	require.NoError(t, err)
	require.Equal(t, charset.CP1250, name)
}

func TestFromFcharsetDefaultSentinel(t *testing.T) {
	name, err := charset.FromFcharset(1, charset.Big5)
	require.NoError(t, err)
	require.Equal(t, charset.Big5, name)
}

func TestFromFcharsetUnknownFails(t *testing.T) {
	_, err := charset.FromFcharset(99, charset.ANSI)
	require.Error(t, err)
}

func TestFromKeyword(t *testing.T) {
	name, ok := charset.FromKeyword("pca")
	require.True(t, ok)
	require.Equal(t, charset.CP850, name)

	_, ok = charset.FromKeyword("nope")
	require.False(t, ok)
}

func TestSingleByteDecoder(t *testing.T) {
	dec, err := charset.NewDecoder(charset.ANSI)
	require.NoError(t, err)
	r, ok, err := dec.DecodeByte(0xe9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 'é', r)
}

func TestShiftJISDecoderNeedsTwoBytes(t *testing.T) {
	dec, err := charset.NewDecoder(charset.CP932)
	require.NoError(t, err)

	// 0x82 0xA0 is Shift-JIS for U+3042 (hiragana A).
	_, ok, err := dec.DecodeByte(0x82)
	require.NoError(t, err)
	require.False(t, ok)

	r, ok, err := dec.DecodeByte(0xA0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 'あ', r)
}

func TestGB2312DecoderUsesGBKWireFormat(t *testing.T) {
	dec, err := charset.NewDecoder(charset.GB2312)
	require.NoError(t, err)

	// 0xd6 0xd0 is the GBK/EUC-CN encoding of 中, the bytes a real
	// \fcharset134 \'d6\'d0 pair carries on the wire.
	_, ok, err := dec.DecodeByte(0xd6)
	require.NoError(t, err)
	require.False(t, ok)

	r, ok, err := dec.DecodeByte(0xd0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, '中', r)
}
