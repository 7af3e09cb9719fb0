// Package codec implements the primitive read/write operations shared by
// every Shell Link substructure: typed little-endian scalars, bit
// extraction/insertion over a 32-bit field, null-terminated single- and
// two-byte string codecs, and the FILETIME tick <-> Unix-seconds mapping.
//
// Every Read* function is infallible on an in-bounds slice and returns a
// KindTruncated lnkerr.FormatError (built by lnkerr.Truncated) when the
// buffer is too short for the field being decoded at the given offset.
package codec

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/captain-woof/lnk-manipulator/pkg/consts"
	"github.com/captain-woof/lnk-manipulator/pkg/lnkerr"
)

// CharWidth selects between the single-byte and two-byte (UTF-16LE) string
// encodings used throughout the format.
type CharWidth int

const (
	// Narrow is the single-byte-per-character encoding.
	Narrow CharWidth = iota
	// Wide is the two-byte-per-character (UTF-16LE) encoding.
	Wide
)

// ReadU32LE decodes a little-endian uint32 at off.
func ReadU32LE(buf []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, lnkerr.Truncated(off, "u32")
	}
	return binary.LittleEndian.Uint32(buf[off : off+4]), nil
}

// ReadI32LE decodes a little-endian int32 at off.
func ReadI32LE(buf []byte, off int) (int32, error) {
	v, err := ReadU32LE(buf, off)
	return int32(v), err
}

// ReadU16LE decodes a little-endian uint16 at off.
func ReadU16LE(buf []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(buf) {
		return 0, lnkerr.Truncated(off, "u16")
	}
	return binary.LittleEndian.Uint16(buf[off : off+2]), nil
}

// ReadI16LE decodes a little-endian int16 at off.
func ReadI16LE(buf []byte, off int) (int16, error) {
	v, err := ReadU16LE(buf, off)
	return int16(v), err
}

// ReadU64LE decodes a little-endian uint64 at off.
func ReadU64LE(buf []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, lnkerr.Truncated(off, "u64")
	}
	return binary.LittleEndian.Uint64(buf[off : off+8]), nil
}

// WriteU32LE appends the little-endian encoding of v to dst.
func WriteU32LE(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// WriteI32LE appends the little-endian encoding of v to dst.
func WriteI32LE(dst []byte, v int32) []byte {
	return WriteU32LE(dst, uint32(v))
}

// WriteU16LE appends the little-endian encoding of v to dst.
func WriteU16LE(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// WriteI16LE appends the little-endian encoding of v to dst.
func WriteI16LE(dst []byte, v int16) []byte {
	return WriteU16LE(dst, uint16(v))
}

// WriteU64LE appends the little-endian encoding of v to dst.
func WriteU64LE(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// ReadBit reads the flag bit at bitIndex from a 32-bit field serialized at
// buf[0:4]. Bit 0 is the low-order bit of the field's on-disk first byte
// (the spec's "HasLinkTargetIDList is bit A" convention), so bitIndex i
// selects byte i/8 and, within that byte, bit (i mod 8) counting from the
// least-significant bit.
func ReadBit(buf []byte, bitIndex int) bool {
	byteIdx := bitIndex / 8
	bitPos := uint(bitIndex % 8)
	if byteIdx >= len(buf) {
		return false
	}
	return buf[byteIdx]&(1<<bitPos) != 0
}

// WriteBit sets or clears the flag bit at bitIndex in-place within buf,
// mirroring ReadBit's bit numbering. It is idempotent when value already
// matches the stored bit.
func WriteBit(buf []byte, bitIndex int, value bool) {
	byteIdx := bitIndex / 8
	bitPos := uint(bitIndex % 8)
	if byteIdx >= len(buf) {
		return
	}
	if value {
		buf[byteIdx] |= 1 << bitPos
	} else {
		buf[byteIdx] &^= 1 << bitPos
	}
}

// ValidateSurrogates reports a lnkerr.BadEncoding error at off if units
// contains an unpaired high surrogate (0xD800-0xDBFF not immediately
// followed by a low surrogate) or a low surrogate (0xDC00-0xDFFF) not
// preceded by a high one. utf16.Decode silently substitutes
// utf8.RuneError for both cases instead of reporting them, which would
// otherwise mask a malformed wide string as a merely lossy one.
func ValidateSurrogates(units []uint16, off int) error {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF: // high surrogate
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return lnkerr.BadEncoding(off+2*i, "unpaired UTF-16 high surrogate")
			}
			i++ // consume its low surrogate
		case u >= 0xDC00 && u <= 0xDFFF: // low surrogate with no preceding high
			return lnkerr.BadEncoding(off+2*i, "dangling UTF-16 low surrogate")
		}
	}
	return nil
}

// ReadCStr reads a string of the given character width starting at off,
// stopping at the first NUL of that width or after maxChars characters,
// whichever comes first. It returns the decoded string and the number of
// bytes consumed, including any terminator encountered.
func ReadCStr(buf []byte, off int, width CharWidth, maxChars int) (string, int, error) {
	if width == Narrow {
		end := off
		count := 0
		for end < len(buf) && buf[end] != 0 && (maxChars < 0 || count < maxChars) {
			end++
			count++
		}
		if end >= len(buf) {
			return "", 0, lnkerr.Truncated(off, "narrow cstring")
		}
		consumed := end - off
		if buf[end] == 0 {
			consumed++ // including NUL
		}
		return string(buf[off:end]), consumed, nil
	}

	units := make([]uint16, 0, 16)
	pos := off
	count := 0
	for (maxChars < 0 || count < maxChars) {
		u, err := ReadU16LE(buf, pos)
		if err != nil {
			return "", 0, lnkerr.Truncated(off, "wide cstring")
		}
		pos += 2
		count++
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	if err := ValidateSurrogates(units, off); err != nil {
		return "", 0, err
	}
	return string(utf16.Decode(units)), pos - off, nil
}

// WriteCStr encodes s at the given character width and appends a single
// terminating NUL of that width.
func WriteCStr(s string, width CharWidth) []byte {
	if width == Narrow {
		out := make([]byte, 0, len(s)+1)
		out = append(out, []byte(s)...)
		return append(out, 0)
	}
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, 2*(len(units)+1))
	for _, u := range units {
		out = WriteU16LE(out, u)
	}
	return WriteU16LE(out, 0)
}

// TicksToUTCSeconds converts a 64-bit FILETIME tick count (100-ns intervals
// since 1601-01-01 UTC) into an integer count of seconds since the Unix
// epoch, using the approximate epoch shift in consts.EpochOffsetSeconds.
func TicksToUTCSeconds(ticks uint64) int64 {
	return int64(ticks/consts.TicksPerSecond) - consts.EpochOffsetSeconds
}

// UTCSecondsToTicks is the inverse of TicksToUTCSeconds: it converts an
// integer count of seconds since the Unix epoch back into a FILETIME tick
// count using the same approximate epoch shift.
func UTCSecondsToTicks(seconds int64) uint64 {
	return uint64(seconds+consts.EpochOffsetSeconds) * consts.TicksPerSecond
}
