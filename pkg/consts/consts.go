// Package consts holds the fixed constants of the Shell Link Binary File
// Format: structural sizes, the canonical class identifiers, and the show
// command enumeration.
package consts

// HeaderSize is the fixed, on-disk size of the ShellLinkHeader in bytes.
// The header's own HeaderSize field must equal this value on write.
const HeaderSize = 0x4C

// ClsidSize is the length in bytes of a ShellLink CLSID.
const ClsidSize = 16

// ClsidModern and ClsidLegacy are the two class identifiers observed in the
// wild for the ShellLinkHeader.CLSID field. Both are accepted on read;
// ClsidLegacy is written by default (see DESIGN.md Open Questions).
var (
	ClsidModern = [ClsidSize]byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
	ClsidLegacy = [ClsidSize]byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0F}
)

// Show command values a ShellLinkHeader.ShowCommand is restricted to. Any
// other value read from disk must be preserved as-is, not coerced.
const (
	ShowNormal      uint32 = 1
	ShowMaximized   uint32 = 3
	ShowMinNoActive uint32 = 7
)

// LinkInfoHeaderSize1 and LinkInfoHeaderSize2 are the two defined values of
// LinkInfo's own header-size discriminator. Size1 is the pre-Unicode-offsets
// layout; Size2 additionally carries the two Unicode sub-offsets.
const (
	LinkInfoHeaderSize1 uint32 = 0x1C
	LinkInfoHeaderSize2 uint32 = 0x24
)

// VolumeIDOffsetUnicode is the VolumeID.VolumeLabelOffset sentinel that
// indicates a Unicode label offset field follows.
const VolumeIDOffsetUnicode uint32 = 0x14

// CNRLNetNameOffsetUnicode is the CommonNetworkRelativeLink NetNameOffset
// threshold: a value greater than this indicates the Unicode tail (and its
// two extra offset fields) is present.
const CNRLNetNameOffsetUnicode uint32 = 0x14

// EpochSecondsPerYear is the approximate seconds-per-year constant the
// reference implementation this library was modeled on uses for the
// 1601-01-01 -> 1970-01-01 epoch shift, in place of the astronomically exact
// value. It must be used verbatim to stay byte-compatible with files
// produced by that implementation (see DESIGN.md Open Questions).
const EpochSecondsPerYear int64 = 31_556_926

// EpochYearSpan is the number of years between the FILETIME epoch
// (1601-01-01) and the Unix epoch (1970-01-01).
const EpochYearSpan int64 = 1970 - 1601

// EpochOffsetSeconds is the number of seconds between the two epochs,
// computed from EpochYearSpan and EpochSecondsPerYear.
const EpochOffsetSeconds = EpochYearSpan * EpochSecondsPerYear

// TicksPerSecond is the number of 100-nanosecond intervals in one second.
const TicksPerSecond uint64 = 10_000_000
