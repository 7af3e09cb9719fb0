package header

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/captain-woof/lnk-manipulator/pkg/codec"
	"github.com/captain-woof/lnk-manipulator/pkg/consts"
)

func minimalHeaderBytes() []byte {
	buf := make([]byte, consts.HeaderSize)
	buf[0] = 0x4C
	copy(buf[4:20], consts.ClsidModern[:])
	return buf
}

func TestParseMinimalHeaderRoundTrips(t *testing.T) {
	buf := minimalHeaderBytes()

	h, err := Parse(buf, nil, true)
	require.NoError(t, err)
	require.Equal(t, uint32(consts.HeaderSize), h.HeaderSize)
	require.False(t, h.LinkFlags.HasLinkTargetIDList())
	require.False(t, h.LinkFlags.HasName())
	require.Equal(t, FileAttributes(0), h.FileAttributes)

	out, err := h.Serialize(consts.ClsidModern)
	require.NoError(t, err)
	require.Equal(t, buf, out)
}

func TestSerializeRejectsUnknownCLSID(t *testing.T) {
	h := New()
	_, err := h.Serialize([consts.ClsidSize]byte{0xFF})
	require.Error(t, err)
}

func TestParseTooShort(t *testing.T) {
	_, err := Parse(make([]byte, 10), nil, true)
	require.Error(t, err)
}

func TestParseStrictRejectsUnrecognizedClsid(t *testing.T) {
	buf := minimalHeaderBytes()
	copy(buf[4:20], []byte{0xAA, 0xBB, 0xCC, 0xDD, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	_, err := Parse(buf, nil, false)
	require.Error(t, err)

	_, err = Parse(buf, nil, true)
	require.NoError(t, err)
}

func TestParseStrictRejectsHeaderSizeMismatch(t *testing.T) {
	buf := minimalHeaderBytes()
	buf[0], buf[1], buf[2], buf[3] = 0, 0, 0, 0

	_, err := Parse(buf, nil, false)
	require.Error(t, err)

	_, err = Parse(buf, nil, true)
	require.NoError(t, err)
}

func TestLinkFlagsBitPositions(t *testing.T) {
	var f LinkFlags
	f.SetHasLinkTargetIDList(true)
	f.SetIsUnicode(true)
	f.SetKeepLocalIDListForUNCTarget(true)

	require.True(t, f.HasLinkTargetIDList())
	require.True(t, f.IsUnicode())
	require.True(t, f.KeepLocalIDListForUNCTarget())
	require.False(t, f.HasLinkInfo())

	// bit 0, bit 7, bit 26
	require.Equal(t, LinkFlags(1<<0|1<<7|1<<26), f)
}

func TestFileAttributesValidNormal(t *testing.T) {
	var a FileAttributes
	a.SetNormal(true)
	require.True(t, a.ValidNormal())

	a.SetArchive(true)
	require.False(t, a.ValidNormal())
}

func TestHotKeyDisplay(t *testing.T) {
	hk := HotKey{VirtualKey: 0x74, Modifiers: ModShift | ModCtrl}
	require.Equal(t, "F5", hk.KeyName())
	require.Equal(t, "SHIFT+CTRL / F5", hk.String())

	require.Equal(t, "", HotKey{}.String())
	require.Equal(t, "NUM LOCK", HotKey{VirtualKey: 0x90}.KeyName())
	require.Equal(t, "SCROLL LOCK", HotKey{VirtualKey: 0x91}.KeyName())
	require.Equal(t, "A", HotKey{VirtualKey: 0x41}.KeyName())
	require.Equal(t, "5", HotKey{VirtualKey: 0x35}.KeyName())
}

func TestSerializeClearsReservedBits(t *testing.T) {
	h := New()
	h.LinkFlags = LinkFlags(1<<uint(bitLinkFlagsReserved1) | 1<<uint(bitLinkFlagsReserved2))
	h.FileAttributes = FileAttributes(1<<uint(bitFileAttrReserved1) | 1<<uint(bitFileAttrReserved2))

	out, err := h.Serialize(consts.ClsidModern)
	require.NoError(t, err)

	linkFlags, err := codec.ReadU32LE(out, 20)
	require.NoError(t, err)
	require.Equal(t, uint32(0), linkFlags)

	fileAttrs, err := codec.ReadU32LE(out, 24)
	require.NoError(t, err)
	require.Equal(t, uint32(0), fileAttrs)
}

func TestNewHeaderDefaults(t *testing.T) {
	h := New()
	require.Equal(t, uint32(consts.HeaderSize), h.HeaderSize)
	require.Equal(t, ShowCommand(consts.ShowNormal), h.ShowCommand)
}
