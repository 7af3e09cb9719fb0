package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/captain-woof/lnk-manipulator/pkg/lnkerr"
)

func TestScalarRoundTrip(t *testing.T) {
	t.Run("U32LE", func(t *testing.T) {
		buf := WriteU32LE(nil, 0xDEADBEEF)
		v, err := ReadU32LE(buf, 0)
		require.NoError(t, err)
		require.Equal(t, uint32(0xDEADBEEF), v)
	})

	t.Run("U16LE", func(t *testing.T) {
		buf := WriteU16LE(nil, 0xCAFE)
		v, err := ReadU16LE(buf, 0)
		require.NoError(t, err)
		require.Equal(t, uint16(0xCAFE), v)
	})

	t.Run("I32LENegative", func(t *testing.T) {
		buf := WriteI32LE(nil, -7)
		v, err := ReadI32LE(buf, 0)
		require.NoError(t, err)
		require.Equal(t, int32(-7), v)
	})

	t.Run("U64LE", func(t *testing.T) {
		buf := WriteU64LE(nil, 0x0102030405060708)
		v, err := ReadU64LE(buf, 0)
		require.NoError(t, err)
		require.Equal(t, uint64(0x0102030405060708), v)
	})
}

func TestReadTruncated(t *testing.T) {
	_, err := ReadU32LE([]byte{1, 2}, 0)
	require.Error(t, err)
}

func TestBitRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	WriteBit(buf, 0, true)
	require.True(t, ReadBit(buf, 0))
	require.False(t, ReadBit(buf, 1))

	// HasLinkTargetIDList convention: bit 0 is the low-order bit of the
	// first serialized byte.
	require.Equal(t, byte(0x01), buf[0])

	WriteBit(buf, 16, true)
	require.True(t, ReadBit(buf, 16))
	require.Equal(t, byte(0x01), buf[2])

	WriteBit(buf, 0, false)
	require.False(t, ReadBit(buf, 0))
}

func TestCStrNarrow(t *testing.T) {
	buf := append(WriteCStr("hello", Narrow), 0xFF) // trailing junk after terminator
	s, n, err := ReadCStr(buf, 0, Narrow, -1)
	require.NoError(t, err)
	require.Equal(t, "hello", s)
	require.Equal(t, 6, n) // "hello" + NUL
}

func TestCStrWide(t *testing.T) {
	buf := WriteCStr("AB", Wide)
	s, n, err := ReadCStr(buf, 0, Wide, -1)
	require.NoError(t, err)
	require.Equal(t, "AB", s)
	require.Equal(t, 6, n) // 2 units + wide NUL
}

func TestCStrWideUnpairedSurrogateIsBadEncoding(t *testing.T) {
	// A lone high surrogate (0xD800) followed immediately by the wide NUL
	// terminator, never paired with a low surrogate.
	buf := []byte{0x00, 0xD8, 0x00, 0x00}
	_, _, err := ReadCStr(buf, 0, Wide, -1)
	require.Error(t, err)
	require.True(t, errors.Is(err, &lnkerr.FormatError{Kind: lnkerr.KindBadEncoding}))
}

func TestValidateSurrogatesAcceptsPairedSurrogates(t *testing.T) {
	// U+1F600 GRINNING FACE as a valid surrogate pair (0xD83D 0xDE00).
	require.NoError(t, ValidateSurrogates([]uint16{0xD83D, 0xDE00}, 0))
}

func TestTicksSecondsRoundTrip(t *testing.T) {
	seconds := int64(1_700_000_000)
	ticks := UTCSecondsToTicks(seconds)
	require.Equal(t, seconds, TicksToUTCSeconds(ticks))
}
