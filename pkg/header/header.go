// Package header implements the fixed 76-byte ShellLinkHeader record: the
// format signature, the two bit-fields (LinkFlags, FileAttributes), the
// three target timestamps, and the handful of integer and hotkey fields
// that open every Shell Link file.
package header

import (
	"github.com/captain-woof/lnk-manipulator/pkg/codec"
	"github.com/captain-woof/lnk-manipulator/pkg/consts"
	"github.com/captain-woof/lnk-manipulator/pkg/lnkerr"
	"github.com/captain-woof/lnk-manipulator/pkg/logging"
)

// ShowCommand restricts ShellLinkHeader.ShowCommand to its three defined
// values. A value read from disk outside this set is preserved verbatim,
// never coerced.
type ShowCommand uint32

// ShellLinkHeader is the 76-byte record every Shell Link file opens with.
type ShellLinkHeader struct {
	HeaderSize     uint32
	CLSID          [consts.ClsidSize]byte
	LinkFlags      LinkFlags
	FileAttributes FileAttributes
	CreationTime   int64 // UTC seconds; zero means unknown
	AccessTime     int64
	WriteTime      int64
	FileSize       uint32
	IconIndex      int32
	ShowCommand    ShowCommand
	HotKey         HotKey
}

// New returns a minimal, valid ShellLinkHeader: HeaderSize set to the
// on-disk constant, ShowCommand defaulted to Normal, and every other field
// zero.
func New() *ShellLinkHeader {
	return &ShellLinkHeader{
		HeaderSize:  consts.HeaderSize,
		ShowCommand: ShowCommand(consts.ShowNormal),
	}
}

// Parse decodes a ShellLinkHeader from the first 76 bytes of buf. When
// lenient is true, a header-size mismatch or unrecognized CLSID is logged
// as a warning and parsing continues; when false, either condition is
// returned as a hard BadClsid error.
func Parse(buf []byte, log *logging.Logger, lenient bool) (*ShellLinkHeader, error) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(buf) < consts.HeaderSize {
		return nil, lnkerr.Truncated(0, "ShellLinkHeader")
	}

	h := &ShellLinkHeader{}

	headerSize, err := codec.ReadU32LE(buf, 0)
	if err != nil {
		return nil, err
	}
	h.HeaderSize = headerSize
	if headerSize != consts.HeaderSize {
		if !lenient {
			return nil, lnkerr.BadClsid(0, "header size does not match the fixed ShellLinkHeader size")
		}
		log.Warn("header size mismatch", "want", consts.HeaderSize, "got", headerSize)
	}

	copy(h.CLSID[:], buf[4:20])
	if h.CLSID != consts.ClsidModern && h.CLSID != consts.ClsidLegacy {
		if !lenient {
			return nil, lnkerr.BadClsid(4, "unrecognized Shell Link class identifier")
		}
		log.Warn("unrecognized clsid", "clsid", h.CLSID)
	}

	linkFlags, err := codec.ReadU32LE(buf, 20)
	if err != nil {
		return nil, err
	}
	h.LinkFlags = LinkFlags(linkFlags)

	fileAttrs, err := codec.ReadU32LE(buf, 24)
	if err != nil {
		return nil, err
	}
	h.FileAttributes = FileAttributes(fileAttrs)
	if !h.FileAttributes.ValidNormal() {
		log.Warn("FILE_ATTRIBUTE_NORMAL set alongside other attribute bits", "file_attributes", h.FileAttributes)
	}

	creationTicks, err := codec.ReadU64LE(buf, 28)
	if err != nil {
		return nil, err
	}
	accessTicks, err := codec.ReadU64LE(buf, 36)
	if err != nil {
		return nil, err
	}
	writeTicks, err := codec.ReadU64LE(buf, 44)
	if err != nil {
		return nil, err
	}
	h.CreationTime = ticksToSeconds(creationTicks)
	h.AccessTime = ticksToSeconds(accessTicks)
	h.WriteTime = ticksToSeconds(writeTicks)

	fileSize, err := codec.ReadU32LE(buf, 52)
	if err != nil {
		return nil, err
	}
	h.FileSize = fileSize

	iconIndex, err := codec.ReadI32LE(buf, 56)
	if err != nil {
		return nil, err
	}
	h.IconIndex = iconIndex

	showCommand, err := codec.ReadU32LE(buf, 60)
	if err != nil {
		return nil, err
	}
	h.ShowCommand = ShowCommand(showCommand)
	switch h.ShowCommand {
	case ShowCommand(consts.ShowNormal), ShowCommand(consts.ShowMaximized), ShowCommand(consts.ShowMinNoActive):
	default:
		log.Warn("show_command outside the defined set, preserving as read", "show_command", showCommand)
	}

	h.HotKey.VirtualKey = buf[64]
	h.HotKey.Modifiers = HotKeyModifier(buf[65])

	log.Trace("parsed header", "link_flags", h.LinkFlags, "file_attributes", h.FileAttributes)
	return h, nil
}

// Serialize encodes h as 76 bytes, stamping header_size and clsid
// regardless of what Parse originally read. clsid must be one of the two
// recognized class identifiers.
func (h *ShellLinkHeader) Serialize(clsid [consts.ClsidSize]byte) ([]byte, error) {
	if clsid != consts.ClsidModern && clsid != consts.ClsidLegacy {
		return nil, lnkerr.BadClsid(0, "clsid is not a recognized Shell Link class identifier")
	}

	out := make([]byte, 0, consts.HeaderSize)
	out = codec.WriteU32LE(out, consts.HeaderSize)
	out = append(out, clsid[:]...)
	out = codec.WriteU32LE(out, uint32(h.LinkFlags.clearReserved()))
	out = codec.WriteU32LE(out, uint32(h.FileAttributes.clearReserved()))
	out = codec.WriteU64LE(out, secondsToTicks(h.CreationTime))
	out = codec.WriteU64LE(out, secondsToTicks(h.AccessTime))
	out = codec.WriteU64LE(out, secondsToTicks(h.WriteTime))
	out = codec.WriteU32LE(out, h.FileSize)
	out = codec.WriteI32LE(out, h.IconIndex)
	out = codec.WriteU32LE(out, uint32(h.ShowCommand))
	out = append(out, h.HotKey.VirtualKey, byte(h.HotKey.Modifiers))
	out = codec.WriteU16LE(out, 0) // reserved1
	out = codec.WriteU32LE(out, 0) // reserved2
	out = codec.WriteU32LE(out, 0) // reserved3
	return out, nil
}

// ticksToSeconds maps a FILETIME tick count to UTC seconds, leaving the
// "unknown" sentinel (zero ticks) as zero rather than a large negative
// offset.
func ticksToSeconds(ticks uint64) int64 {
	if ticks == 0 {
		return 0
	}
	return codec.TicksToUTCSeconds(ticks)
}

// secondsToTicks is the inverse of ticksToSeconds.
func secondsToTicks(seconds int64) uint64 {
	if seconds == 0 {
		return 0
	}
	return codec.UTCSecondsToTicks(seconds)
}
